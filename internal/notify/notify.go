package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func FormatRollover(day int) (string, string) {
	title := "A new day"
	msg := fmt.Sprintf("Day %d's thought is ready.", day)
	return title, msg
}
