package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesDir == "" {
		localesDir = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error leyendo locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error cargando el archivo de locale %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("idioma '%s' no soportado", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Chat with a GitHub repository from your terminal or browser"

	[app_description]
	other = "MateChat fetches repository data (files, issues, PRs, commits) and lets an AI model answer your questions about it"

	[ask_command_usage]
	other = "Ask a single question about the configured repository"

	[chat_command_usage]
	other = "Start an interactive chat session"

	[serve_command_usage]
	other = "Serve the browser chat UI"

	[config_command_usage]
	other = "Manage MateChat configuration"

	[flag.repo_usage]
	other = "Repository to query (owner/repo or full GitHub URL)"

	[flag.question_usage]
	other = "Question to ask about the repository"

	[flag.limit_usage]
	other = "Maximum records to fetch per question (1-100)"

	[flag.port_usage]
	other = "Port for the web chat server"

	[chat.welcome]
	other = "Chatting with {{.Repo}}. Type 'exit' to quit."

	[chat.goodbye]
	other = "Session closed. {{.Turns}} turns in the transcript."

	[chat.prompt_label]
	other = "you"

	[chat.thinking]
	other = "Fetching data from {{.Repo}}..."

	[chat.fallback_answer]
	other = "I couldn't generate an answer right now. The repository data was fetched correctly; please try asking again."

	[chat.empty_results]
	other = "I looked, but there is nothing matching that in this repository."

	[chat.answer_ready]
	other = "Answer ready"

	[error.empty_question]
	other = "The question can't be empty"

	[error.repo_not_found]
	other = "The repository '{{.Repo}}' was not found, or it isn't accessible with the configured token."

	[error.repo_auth]
	other = "GitHub rejected the configured token for '{{.Repo}}'. Check that it's valid and has access to the repository."

	[error.rate_limited]
	other = "GitHub's rate limit was reached. Wait a bit before asking again."

	[error.github_generic]
	other = "GitHub returned an error while fetching '{{.Repo}}': {{.Error}}"

	[error.no_repo_configured]
	other = "No repository configured. Pass --repo or run 'matechat config set-repo owner/repo'."

	[error.missing_api_key]
	other = "Gemini API key is not configured. Run 'matechat config set-api-key <key>'."

	[error.missing_github_token]
	other = "GitHub token is not configured. Run 'matechat config set-token <token>'."

	[error.chat_service_creation]
	other = "Could not initialize the chat service"

	[config.init_success]
	other = "Configuration created at {{.Path}}"

	[config.show_title]
	other = "Current configuration"

	[config.lang_updated]
	other = "Language set to '{{.Lang}}'"

	[config.api_key_updated]
	other = "Gemini API key saved"

	[config.token_updated]
	other = "GitHub token saved"

	[config.repo_updated]
	other = "Default repository set to '{{.Repo}}'"

	[config.not_set]
	other = "(not set)"

	[server.listening]
	other = "Web chat listening on http://localhost:{{.Port}}"

	[server.invalid_body]
	other = "invalid JSON body"

	[server.question_required]
	other = "question is required"
	`
