// Package ui holds the shared look of the stepper and its CLI: the color
// palette, terminal sizing, and the boxed blocks (header, result, alert,
// range gauge) rendered with Lipgloss.
//
// The stepper package draws the alert through RenderAlertBox; the CLI
// prints headers and result boxes through a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader(ui.NewHeader("Stepper configuration", "stepper config",
//	    ui.Param{Key: "Bounds", Value: "0 … 10"},
//	))
//	p.PrintSuccess("Defaults written", ui.Param{Key: "Path", Value: path})
package ui
