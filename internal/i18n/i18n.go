package i18n

import (
	"errors"
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

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, errors.New("default language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
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
	return fmt.Errorf("language '%s' not supported", lang)
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
	other = "Generate release notes from a changeset using GitHub pull request descriptions"

	[app_description]
	other = "Reads a changeset, resolves every commit hash to its original pull request and appends the PR description, author and co-authors to the release notes"

	[notes.paste_prompt]
	other = "Please paste your changeset text (press Ctrl+D when done):"

	[notes.processing_commit]
	other = "Processing commit {{.Hash}}..."

	[notes.commit_not_found]
	other = "Commit {{.Hash}} not found in the target repository"

	[notes.api_error]
	other = "Error fetching data from GitHub for commit {{.Hash}}: {{.Error}}"

	[notes.rate_limit_wait]
	other = "Rate limit exceeded. Waiting for {{.Seconds}} seconds..."

	[notes.forced_release_pr]
	other = "Only release-flagged pull requests reference commit {{.Hash}}; accepting PR #{{.Number}} anyway"

	[notes.resolving]
	other = "Resolving {{.Count}} commits from the changeset"

	[notes.done]
	other = "Release notes generated"

	[notes.written]
	other = "Release notes written to {{.File}}"

	[notes.generated_banner]
	other = "Generated Release Notes:"

	[prompt.enter_token]
	other = "Please enter your GitHub token: "
	`
