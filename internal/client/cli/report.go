package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/gabriel-vasile/mimetype"
)

// Report walks a worker through filing an incident: text fields, optional
// geolocation, photo and audio attachments, a removal pass, then submission.
func (a *App) Report(ctx context.Context) error {
	if !a.allowed(models.RoleWorker) {
		return nil
	}

	title, err := GetSimpleText(a.reader, "Incident title", a.out)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Describe what happened", a.out)
	if err != nil {
		return err
	}

	lat := a.promptCoordinate("Latitude (empty to skip)")
	lng := a.promptCoordinate("Longitude (empty to skip)")

	a.attach(ctx, models.FileKindImage, "Photo files to attach")
	a.attach(ctx, models.FileKindAudio, "Audio files to attach")
	a.reviewAttachments()

	draft := models.IncidentDraft{
		Title:       title,
		Description: description,
		Latitude:    lat,
		Longitude:   lng,
	}

	inc, err := a.incidents.Report(ctx, draft, a.uploads)
	if err != nil {
		fmt.Fprintf(a.out, "Could not file the incident: %v\n", err)
		return err
	}

	a.uploads.Reset()
	fmt.Fprintf(a.out, "Incident #%d filed.\n", inc.ID)
	return nil
}

func (a *App) promptCoordinate(prompt string) float64 {
	raw, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil || raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(a.out, "not a number, skipping: %q\n", raw)
		return 0
	}
	return v
}

// attach reads the given files from disk and runs them through the upload
// coordinator as one batch. A partial failure surfaces as a single message;
// the files that made it stay attached.
func (a *App) attach(ctx context.Context, kind models.FileKind, prompt string) {
	paths, err := GetPaths(a.reader, prompt, a.out)
	if err != nil {
		return
	}

	files := make([]models.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(a.out, "skipping %s: %v\n", p, err)
			continue
		}
		files = append(files, models.File{
			Name:        filepath.Base(p),
			ContentType: mimetype.Detect(data).String(),
			Data:        data,
		})
	}
	if len(files) == 0 {
		return
	}

	res, err := a.uploads.UploadAll(ctx, files, kind)
	if err != nil {
		fmt.Fprintln(a.out, "Some files could not be uploaded. The rest were attached.")
		return
	}
	fmt.Fprintf(a.out, "%d file(s) attached.\n", res.Uploaded)
}

// reviewAttachments shows what's attached and lets the user drop URLs before
// submitting. Removal is local only.
func (a *App) reviewAttachments() {
	images, audio := a.uploads.ImageURLs(), a.uploads.AudioURLs()
	if len(images) == 0 && len(audio) == 0 {
		return
	}

	fmt.Fprintln(a.out, "Attached:")
	for _, u := range images {
		fmt.Fprintf(a.out, "  [image] %s\n", u)
	}
	for _, u := range audio {
		fmt.Fprintf(a.out, "  [audio] %s\n", u)
	}

	for {
		url, err := GetSimpleText(a.reader, "URL to remove (empty to continue)", a.out)
		if err != nil || url == "" {
			return
		}
		if a.uploads.RemoveImageURL(url) || a.uploads.RemoveAudioURL(url) {
			fmt.Fprintln(a.out, "removed")
			continue
		}
		fmt.Fprintln(a.out, "no such attachment")
	}
}
