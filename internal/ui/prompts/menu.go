package prompts

import (
	"github.com/hance08/teller/internal/constants"
)

// PromptMainMenu shows the main menu and returns the chosen entry.
func PromptMainMenu(bankName string) (string, error) {
	return PromptSelect(bankName+" - Main Menu", constants.MainMenu, constants.MenuCreateAccount)
}
