package cli

import (
	"context"
	"fmt"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/ahmchowd27/safesnap-client/internal/client/session"
)

func (a *App) List(ctx context.Context) error {
	if out := a.guard.CheckAuthenticated(); out.Decision != session.Allow {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	incidents, err := a.incidents.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if len(incidents) == 0 {
		fmt.Fprintln(a.out, "No incidents.")
		return nil
	}

	for _, inc := range incidents {
		fmt.Fprintf(a.out, "#%d  [%s]  %s  (by %s)\n", inc.ID, inc.Status, inc.Title, inc.ReportedBy)
	}
	return nil
}

// Show prints one incident in full, resolving fresh download links for its
// attachments. Attachments whose objects have since disappeared are marked.
func (a *App) Show(ctx context.Context) error {
	if out := a.guard.CheckAuthenticated(); out.Decision != session.Allow {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	id, err := a.promptID("Incident id")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	inc, err := a.incidents.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "#%d  [%s]  %s\n", inc.ID, inc.Status, inc.Title)
	fmt.Fprintln(a.out, inc.Description)
	if inc.Latitude != 0 || inc.Longitude != 0 {
		fmt.Fprintf(a.out, "location: %.5f, %.5f\n", inc.Latitude, inc.Longitude)
	}

	a.printAttachments(ctx, "image", inc.ImageURLs)
	a.printAttachments(ctx, "audio", inc.AudioURLs)
	return nil
}

func (a *App) printAttachments(ctx context.Context, label string, urls []string) {
	for _, u := range urls {
		if !a.uploads.FileExists(ctx, u) {
			fmt.Fprintf(a.out, "  [%s] %s (no longer available)\n", label, u)
			continue
		}
		link, err := a.uploads.DownloadURL(ctx, u)
		if err != nil {
			fmt.Fprintf(a.out, "  [%s] %s\n", label, u)
			continue
		}
		fmt.Fprintf(a.out, "  [%s] %s (link valid %s)\n", label, link.URL, link.ExpiresIn)
	}
}

// Status moves an incident through the triage workflow. Managers only.
func (a *App) Status(ctx context.Context) error {
	if !a.allowed(models.RoleManager) {
		return nil
	}

	id, err := a.promptID("Incident id")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	status, err := GetSimpleText(a.reader, "New status (OPEN/IN_PROGRESS/RESOLVED)", a.out)
	if err != nil {
		return err
	}

	inc, err := a.incidents.SetStatus(ctx, id, status)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Incident #%d is now %s.\n", inc.ID, inc.Status)
	return nil
}
