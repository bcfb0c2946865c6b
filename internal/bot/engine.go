package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/profile-forge/internal/llm"
	"github.com/jonathan/profile-forge/internal/parsing"
	"github.com/jonathan/profile-forge/internal/readme"
	"github.com/jonathan/profile-forge/internal/stt"
	"github.com/jonathan/profile-forge/internal/types"
	"github.com/jonathan/profile-forge/internal/validation"
)

// Message is one user turn. Either Text or Audio is set; audio turns
// are transcribed before processing.
type Message struct {
	Text          string
	Audio         []byte
	AudioFilename string
}

// Reply is the engine's answer to a turn: a prompt for the user, the
// state the session is now in, and the README once one exists.
type Reply struct {
	Text   string
	State  State
	Readme string
	Done   bool
}

// skip inputs let the user decline an optional field.
func isSkip(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "skip", "-", "none", "no":
		return true
	}
	return false
}

// Engine drives the conversation. The transcriber is optional; without
// it voice turns are rejected with a prompt to type instead.
type Engine struct {
	client      llm.Client
	transcriber stt.Transcriber
	assembler   *readme.Assembler
}

// NewEngine creates a dialogue engine.
func NewEngine(client llm.Client, transcriber stt.Transcriber, assembler *readme.Assembler) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if assembler == nil {
		return nil, fmt.Errorf("assembler is required")
	}
	return &Engine{client: client, transcriber: transcriber, assembler: assembler}, nil
}

// Advance processes one user turn against the session's current state
// and returns the next prompt. Validation failures keep the session in
// place and re-prompt rather than erroring the conversation.
func (e *Engine) Advance(ctx context.Context, session *Session, msg Message) (*Reply, error) {
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	defer session.touch()

	text := strings.TrimSpace(msg.Text)

	switch session.State {
	case StateStart:
		session.State = StateWaitingName
		return reply(session, promptName), nil

	case StateWaitingName:
		if !validation.ValidName(text) {
			return reply(session, promptInvalidName), nil
		}
		session.Profile.Name = text
		session.State = StateWaitingGitHub
		return reply(session, fmt.Sprintf(promptGitHub, text)), nil

	case StateWaitingGitHub:
		if !validation.ValidGitHubUsername(text) {
			return reply(session, promptInvalidGitHub), nil
		}
		session.Profile.GitHub = text
		session.State = StateWaitingLinkedIn
		return reply(session, promptLinkedIn), nil

	case StateWaitingLinkedIn:
		if !isSkip(text) {
			if !validation.ValidLinkedInURL(text) {
				return reply(session, promptInvalidLinkedIn), nil
			}
			session.Profile.LinkedIn = text
		}
		session.State = StateWaitingPortfolio
		return reply(session, promptPortfolio), nil

	case StateWaitingPortfolio:
		if !isSkip(text) {
			if !validation.ValidURL(text) {
				return reply(session, promptInvalidPortfolio), nil
			}
			session.Profile.Portfolio = text
		}
		session.State = StateWaitingEmail
		return reply(session, promptEmail), nil

	case StateWaitingEmail:
		if !isSkip(text) {
			if !validation.ValidEmail(text) {
				return reply(session, promptInvalidEmail), nil
			}
			session.Profile.Email = text
		}
		session.State = StateWaitingDescription
		return reply(session, promptDescription), nil

	case StateWaitingDescription:
		return e.processDescription(ctx, session, msg)

	case StateConfirmation:
		return e.processConfirmation(ctx, session, text)

	case StateCompleted:
		return &Reply{Text: promptCompleted, State: session.State, Readme: session.Readme, Done: true}, nil

	default:
		return nil, fmt.Errorf("session %s is in unknown state %q", session.ID, session.State)
	}
}

// processDescription turns the free-form self-description into a
// structured profile and a draft README.
func (e *Engine) processDescription(ctx context.Context, session *Session, msg Message) (*Reply, error) {
	text := strings.TrimSpace(msg.Text)

	if len(msg.Audio) > 0 {
		if e.transcriber == nil {
			return reply(session, promptVoiceUnavailable), nil
		}
		transcript, err := e.transcriber.Transcribe(ctx, msg.Audio, stt.DetectMIMEType(msg.AudioFilename))
		if err != nil {
			return nil, fmt.Errorf("failed to transcribe voice message: %w", err)
		}
		text = transcript
	}

	if !validation.ValidDescriptionLength(text) {
		return reply(session, promptDescriptionTooShort), nil
	}

	extracted, err := parsing.ExtractProfile(ctx, e.client, text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract profile: %w", err)
	}

	mergeProfile(&session.Profile, extracted)

	doc, err := e.assembler.Assemble(ctx, &session.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble readme: %w", err)
	}

	session.Readme = doc
	session.State = StateConfirmation
	return &Reply{
		Text:   confirmationSummary(&session.Profile),
		State:  session.State,
		Readme: doc,
	}, nil
}

// processConfirmation handles approve/redo at the confirmation step.
func (e *Engine) processConfirmation(ctx context.Context, session *Session, text string) (*Reply, error) {
	switch strings.ToLower(text) {
	case "approve", "yes", "ok", "looks good":
		session.State = StateCompleted
		return &Reply{Text: promptApproved, State: session.State, Readme: session.Readme, Done: true}, nil
	case "redo", "again", "edit":
		session.Readme = ""
		session.Profile.Languages = nil
		session.Profile.Skills = nil
		session.Profile.Tools = nil
		session.State = StateWaitingDescription
		return reply(session, promptRedo), nil
	default:
		return &Reply{Text: promptConfirmChoices, State: session.State, Readme: session.Readme}, nil
	}
}

// mergeProfile overlays extracted fields onto the session profile. The
// contact fields the user typed explicitly win over whatever the model
// inferred from the description.
func mergeProfile(base, extracted *types.ProfileData) {
	if base.Name == "" {
		base.Name = extracted.Name
	}
	if base.GitHub == "" {
		base.GitHub = extracted.GitHub
	}
	if base.LinkedIn == "" {
		base.LinkedIn = extracted.LinkedIn
	}
	if base.Portfolio == "" {
		base.Portfolio = extracted.Portfolio
	}
	if base.Email == "" {
		base.Email = extracted.Email
	}

	base.Summary = extracted.Summary
	base.Languages = extracted.Languages
	base.Skills = extracted.Skills
	base.Tools = extracted.Tools
	base.CurrentlyWorkingOn = extracted.CurrentlyWorkingOn
	base.CurrentlyLearning = extracted.CurrentlyLearning
	base.OpenTo = extracted.OpenTo
	base.FunFact = extracted.FunFact
}

func reply(session *Session, text string) *Reply {
	return &Reply{Text: text, State: session.State}
}

// confirmationSummary shows the user what was extracted before they
// approve the document.
func confirmationSummary(profile *types.ProfileData) string {
	var sb strings.Builder
	sb.WriteString("Here's what I put together:\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", profile.Name)
	fmt.Fprintf(&sb, "GitHub: %s\n", profile.GitHub)
	if profile.LinkedIn != "" {
		fmt.Fprintf(&sb, "LinkedIn: %s\n", profile.LinkedIn)
	}
	if profile.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", profile.Email)
	}
	if len(profile.Languages) > 0 {
		fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(profile.Languages, ", "))
	}
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(profile.Skills, ", "))
	}
	if len(profile.Tools) > 0 {
		fmt.Fprintf(&sb, "Tools: %s\n", strings.Join(profile.Tools, ", "))
	}
	sb.WriteString("\nReply \"approve\" to finish or \"redo\" to describe yourself again.")
	return sb.String()
}
