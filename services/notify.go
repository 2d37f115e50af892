package services

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

const notifierAppName = "Filing Tracker"

// Notifier delivers a reminder to the user. The reminder scheduler depends
// only on this interface; the concrete capability is selected once at
// startup.
type Notifier interface {
	Notify(title, message string) error
}

// DetectNotifier picks the native system notifier when the platform supports
// one, falling back to in-app log delivery.
func DetectNotifier() Notifier {
	switch runtime.GOOS {
	case "linux":
		if _, err := exec.LookPath("notify-send"); err == nil {
			log.Println("Notification delivery: system (notify-send)")
			return &SystemNotifier{command: "notify-send"}
		}
	case "darwin":
		if _, err := exec.LookPath("osascript"); err == nil {
			log.Println("Notification delivery: system (osascript)")
			return &SystemNotifier{command: "osascript"}
		}
	}

	log.Println("Notification delivery: in-app log (no system notifier available)")
	return &LogNotifier{}
}

// SystemNotifier sends OS-level desktop notifications.
type SystemNotifier struct {
	command string
}

func (n *SystemNotifier) Notify(title, message string) error {
	var cmd *exec.Cmd
	switch n.command {
	case "osascript":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		cmd = exec.Command("osascript", "-e", script)
	default:
		cmd = exec.Command("notify-send", "--app-name", notifierAppName, title, message)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to send system notification: %w", err)
	}
	return nil
}

// LogNotifier is the in-app fallback when no system notifier exists.
type LogNotifier struct{}

func (n *LogNotifier) Notify(title, message string) error {
	log.Printf("[REMINDER] %s: %s", title, message)
	return nil
}
