package devicon

import "strings"

// customOverride pins a well-known tool that the icon dataset lacks to
// an externally hosted icon asset.
type customOverride struct {
	keyword string
	iconURL string
}

// customOverrides is matched by substring containment against the
// normalized input, first match wins, so declaration order is part of
// the contract. Keep more specific keywords above shorter ones.
var customOverrides = []customOverride{
	{"power bi", "https://upload.wikimedia.org/wikipedia/commons/c/cf/New_Power_BI_Logo.svg"},
	{"powerbi", "https://upload.wikimedia.org/wikipedia/commons/c/cf/New_Power_BI_Logo.svg"},
	{"tableau", "https://cdn.worldvectorlogo.com/logos/tableau-software.svg"},
	{"excel", "https://upload.wikimedia.org/wikipedia/commons/3/34/Microsoft_Office_Excel_%282019%E2%80%93present%29.svg"},
	{"scikit", "https://upload.wikimedia.org/wikipedia/commons/0/05/Scikit_learn_logo_small.svg"},
	{"sklearn", "https://upload.wikimedia.org/wikipedia/commons/0/05/Scikit_learn_logo_small.svg"},
	{"hugging face", "https://huggingface.co/front/assets/huggingface_logo-noborder.svg"},
	{"huggingface", "https://huggingface.co/front/assets/huggingface_logo-noborder.svg"},
	{"openai", "https://upload.wikimedia.org/wikipedia/commons/4/4d/OpenAI_Logo.svg"},
	{"langchain", "https://raw.githubusercontent.com/langchain-ai/.github/main/profile/logo-dark.svg"},
	{"streamlit", "https://streamlit.io/images/brand/streamlit-mark-color.svg"},
	{"postman", "https://www.vectorlogo.zone/logos/getpostman/getpostman-icon.svg"},
	{"notion", "https://upload.wikimedia.org/wikipedia/commons/4/45/Notion_app_logo.png"},
}

// lookupOverride returns the override icon URL for the normalized
// input, or "" when no override keyword is contained in it.
func lookupOverride(normalized string) string {
	for _, o := range customOverrides {
		if strings.Contains(normalized, o.keyword) {
			return o.iconURL
		}
	}
	return ""
}
