package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/validation"
)

var ErrNoAccounts = errors.New("no accounts have been opened yet")

// PromptOpenAccount collects the details of a new account in one form.
func PromptOpenAccount(minimumDeposit string, scale int32) (service.OpenAccountInput, error) {
	var in service.OpenAccountInput
	in.Category = constants.Categories[0]

	categories := make([]huh.Option[string], 0, len(constants.Categories))
	for _, c := range constants.Categories {
		categories = append(categories, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&in.Holder).
				Validate(validation.ValidateHolderName),
			huh.NewInput().
				Title("Contact number").
				Placeholder("+251911234567").
				Value(&in.Contact).
				Validate(validation.ValidateContact),
			huh.NewInput().
				Title("National ID number").
				Description("Optional").
				Value(&in.NationalID).
				Validate(validation.ValidateNationalID),
			huh.NewSelect[string]().
				Title("Account category").
				Options(categories...).
				Value(&in.Category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Initial deposit").
				Description(fmt.Sprintf("Minimum %s", minimumDeposit)).
				Value(&in.OpeningDeposit).
				Validate(validation.ValidateAmount(scale)),
		),
	)

	if err := form.Run(); err != nil {
		return service.OpenAccountInput{}, err
	}
	return in, nil
}

// PromptAccountNumber asks the user to pick one of the open accounts.
// Entries in exclude are not offered.
func PromptAccountNumber(message string, accounts []bank.Snapshot, exclude ...string) (string, error) {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	var options []string
	for _, acc := range accounts {
		if skip[acc.ID] {
			continue
		}
		options = append(options, fmt.Sprintf("%s - %s", acc.ID, acc.Holder))
	}
	if len(options) == 0 {
		return "", ErrNoAccounts
	}

	var selected string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 10,
	}
	if err := survey.AskOne(prompt, &selected, ui.IconOption()); err != nil {
		return "", err
	}

	id, _, _ := strings.Cut(selected, " - ")
	return id, nil
}
