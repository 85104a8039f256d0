package window

import "github.com/ncruces/zenity"

// ShowError displays a blocking modal error dialog. It works without a window, so startup
// failures that happen before or during window creation can still be reported.
//
// Parameters:
//   - title: the dialog title
//   - message: the error text
//
// Returns:
//   - error: an error if no dialog backend is available
func ShowError(title, message string) error {
	return zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
}
