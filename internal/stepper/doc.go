// Package stepper provides a Bubble Tea control for editing a bounded
// integer: a numeric field between decrement and increment buttons.
//
// # Display and edit modes
//
// In display mode the field shows the value with its unit. The buttons
// step it by Config.Step and are disabled at the matching bound. Holding
// a button with the mouse for LongPressThreshold starts a repeat that
// steps every RepeatInterval until the press ends or a bound is reached.
//
// Focusing the field enters edit mode: the unit is stripped and the
// buttons are replaced by cancel and confirm controls. Leaving edit mode
// runs Validate on the typed text:
//
//   - Confirm with a valid number commits it.
//   - Confirm with an invalid entry shows an alert and leaves the value
//     alone; dismissing the alert resumes editing the rejected text.
//   - Leaving without confirming commits the nearest valid value instead
//     (the violated bound, or the value from before the edit when the text
//     is not a number). The alert is shown only when
//     Config.ShowAlertOnAutoCorrect is set.
//
// # Usage
//
//	value := binding.NewInt(5)
//	m, err := stepper.New(value, nil, config.Default(),
//		config.WithBounds(0, 10),
//		config.WithUnit("%"),
//	)
//
// Route messages to m.Update and render m.View from the host model. When
// the host writes to the binding itself it should pass ValueChangedMsg to
// the editor so the display resyncs. Call Close when the editor goes away
// so no repeat keeps running.
package stepper
