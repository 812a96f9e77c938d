package tui

import "time"

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// timeUpMsg is sent when the exam timer finalizes the sitting.
type timeUpMsg struct{}

// finishMsg asks the model to end the sitting by hand.
type finishMsg struct{}
