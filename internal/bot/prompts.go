package bot

// User-facing prompts for each step of the collection flow.
const (
	promptName        = "Hi! Let's build your GitHub profile README. What's your name?"
	promptInvalidName = "That doesn't look like a name. Please use 2-50 letters, spaces, or hyphens."

	promptGitHub        = "Nice to meet you, %s! What's your GitHub username?"
	promptInvalidGitHub = "That doesn't look like a GitHub username. It can use letters, digits, and hyphens, and can't start or end with a hyphen."

	promptLinkedIn        = "Got it. What's your LinkedIn URL? (reply \"skip\" to leave it out)"
	promptInvalidLinkedIn = "That doesn't look like a LinkedIn URL. Paste a link like https://linkedin.com/in/you, or reply \"skip\"."

	promptPortfolio        = "Do you have a portfolio or personal site? Paste the URL or reply \"skip\"."
	promptInvalidPortfolio = "That doesn't look like a URL. Include the scheme, like https://you.github.io, or reply \"skip\"."

	promptEmail        = "What email should people reach you at? (reply \"skip\" to leave it out)"
	promptInvalidEmail = "That doesn't look like an email address. Try again or reply \"skip\"."

	promptDescription = "Now tell me about yourself: what you do, the languages and tools you work with, " +
		"what you're learning. You can type it or send a voice message."
	promptDescriptionTooShort = "That's a bit short for a profile. Give me a few sentences about what you do and the technologies you use."
	promptVoiceUnavailable    = "Voice messages aren't available right now. Please type your description instead."

	promptConfirmChoices = "Reply \"approve\" to finish or \"redo\" to describe yourself again."
	promptApproved       = "Your README is ready! Download it or deploy it straight to your profile repository."
	promptRedo           = "No problem. Describe yourself again and I'll rebuild the README."
	promptCompleted      = "This session is finished. Start a new one to build another README."
)
