package composer

import (
	"fmt"
	"mime/multipart"
	"strings"
	"unicode/utf8"

	"github.com/init0-hack8/postpulse/internal/models"
)

// ValidationError is a user-correctable submission failure. It blocks the
// submission and is rendered inline by the dashboard.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Draft holds an in-progress post. It lives only for the duration of one
// submission request and is the single owner of its state.
type Draft struct {
	content     string
	platform    string
	isJobUpdate bool
	files       []*multipart.FileHeader
	previews    []string
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetContent(content string) {
	d.content = content
}

// SelectPlatform picks the single target platform. "twitter" is normalized
// to "x". Moving away from linkedin resets the job-update flag.
func (d *Draft) SelectPlatform(platform string) {
	if platform == "twitter" {
		platform = models.PlatformX
	}
	d.platform = platform
	if d.platform != models.PlatformLinkedin {
		d.isJobUpdate = false
	}
}

func (d *Draft) ToggleJobUpdate(v bool) {
	if d.platform != models.PlatformLinkedin {
		d.isJobUpdate = false
		return
	}
	d.isJobUpdate = v
}

func (d *Draft) SetFiles(files []*multipart.FileHeader) {
	d.files = files
}

func (d *Draft) SetPreviews(previews []string) {
	d.previews = previews
}

func (d *Draft) Content() string                { return d.content }
func (d *Draft) Platform() string               { return d.platform }
func (d *Draft) IsJobUpdate() bool              { return d.isJobUpdate }
func (d *Draft) Files() []*multipart.FileHeader { return d.files }
func (d *Draft) Previews() []string             { return d.previews }

func (d *Draft) IsValidForSubmit() bool {
	return d.Validate() == nil
}

// Validate enforces the submission-time rules. The character cap is checked
// here again even though the UI already truncates, so a programmatic caller
// cannot bypass it.
func (d *Draft) Validate() error {
	if d.platform == "" {
		return &ValidationError{Field: "platform", Reason: "no platform selected"}
	}
	if !KnownPlatform(d.platform) {
		return &ValidationError{Field: "platform", Reason: fmt.Sprintf("unknown platform %q", d.platform)}
	}
	if strings.TrimSpace(d.content) == "" {
		return &ValidationError{Field: "content", Reason: "content cannot be empty"}
	}
	if ShortForm(d.platform) && utf8.RuneCountInString(d.content) > models.ShortFormLimit {
		return &ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("content exceeds %d characters for platform %s", models.ShortFormLimit, d.platform),
		}
	}
	if len(d.files) == 0 {
		return &ValidationError{Field: "files", Reason: "no files selected"}
	}
	if len(d.files) > 1 && !MultiImage(d.platform) {
		return &ValidationError{
			Field:  "files",
			Reason: fmt.Sprintf("platform %s permits a single file", d.platform),
		}
	}
	return nil
}

func KnownPlatform(platform string) bool {
	switch platform {
	case models.PlatformX, models.PlatformInstagram, models.PlatformFacebook,
		models.PlatformThreads, models.PlatformLinkedin:
		return true
	}
	return false
}

// ShortForm reports whether the platform carries the 140-character cap.
func ShortForm(platform string) bool {
	return platform == models.PlatformX || platform == models.PlatformThreads
}

// MultiImage reports whether the platform accepts more than one file.
func MultiImage(platform string) bool {
	return platform == models.PlatformInstagram
}
