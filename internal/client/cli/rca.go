package cli

import (
	"context"
	"fmt"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
)

// RCA requests or views an AI-assisted root cause analysis. Managers only.
func (a *App) RCA(ctx context.Context) error {
	if !a.allowed(models.RoleManager) {
		return nil
	}

	id, err := a.promptID("Incident id")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	action, err := GetSimpleText(a.reader, "(g)enerate a new analysis or (v)iew the existing one?", a.out)
	if err != nil {
		return err
	}

	var report *models.RCAReport
	switch action {
	case "g", "generate":
		report, err = a.incidents.RequestRCA(ctx, id)
	case "v", "view", "":
		report, err = a.incidents.RCA(ctx, id)
	default:
		fmt.Fprintf(a.out, "unknown choice: %q\n", action)
		return nil
	}
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "RCA for incident #%d [%s]\n", report.IncidentID, report.Status)
	if report.Analysis != "" {
		fmt.Fprintln(a.out, report.Analysis)
	} else {
		fmt.Fprintln(a.out, "The analysis is not ready yet; check back shortly.")
	}
	return nil
}
