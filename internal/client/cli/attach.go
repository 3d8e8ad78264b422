package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
)

// Attach uploads files outside the report flow, so a worker can stage
// attachments before sitting down to write the incident text.
func (a *App) Attach(ctx context.Context) error {
	if !a.allowed(models.RoleWorker) {
		return nil
	}

	kindRaw, err := GetSimpleText(a.reader, "Attachment kind (image/audio)", a.out)
	if err != nil {
		return err
	}

	var kind models.FileKind
	switch strings.ToLower(kindRaw) {
	case "image", "":
		kind = models.FileKindImage
	case "audio":
		kind = models.FileKindAudio
	default:
		fmt.Fprintf(a.out, "unknown kind: %q\n", kindRaw)
		return nil
	}

	a.attach(ctx, kind, "Files to attach")
	return nil
}

// Detach drops an already-uploaded attachment from the pending incident.
// The object stays in storage; only the local reference goes away.
func (a *App) Detach(ctx context.Context) error {
	if !a.allowed(models.RoleWorker) {
		return nil
	}

	images, audio := a.uploads.ImageURLs(), a.uploads.AudioURLs()
	if len(images) == 0 && len(audio) == 0 {
		fmt.Fprintln(a.out, "Nothing attached.")
		return nil
	}

	fmt.Fprintln(a.out, "Attached:")
	for _, u := range images {
		fmt.Fprintf(a.out, "  [image] %s\n", u)
	}
	for _, u := range audio {
		fmt.Fprintf(a.out, "  [audio] %s\n", u)
	}

	url, err := GetSimpleText(a.reader, "URL to remove", a.out)
	if err != nil || url == "" {
		return err
	}
	if a.uploads.RemoveImageURL(url) || a.uploads.RemoveAudioURL(url) {
		fmt.Fprintln(a.out, "removed")
		return nil
	}
	fmt.Fprintln(a.out, "no such attachment")
	return nil
}
