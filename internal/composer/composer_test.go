package composer

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/init0-hack8/postpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeaders(n int) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, n)
	for i := range files {
		files[i] = &multipart.FileHeader{Filename: "img.png"}
	}
	return files
}

func validDraft(platform string) *Draft {
	d := NewDraft()
	d.SelectPlatform(platform)
	d.SetContent("hello")
	d.SetFiles(fileHeaders(1))
	return d
}

func TestValidate_NoPlatform(t *testing.T) {
	d := NewDraft()
	d.SetContent("hello")
	d.SetFiles(fileHeaders(1))

	err := d.Validate()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "platform", vErr.Field)
	assert.False(t, d.IsValidForSubmit())
}

func TestValidate_UnknownPlatform(t *testing.T) {
	d := validDraft("myspace")
	require.Error(t, d.Validate())
}

func TestValidate_EmptyContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t "} {
		d := validDraft(models.PlatformFacebook)
		d.SetContent(content)
		require.Error(t, d.Validate(), "content %q should fail", content)
	}
}

func TestValidate_NoFiles(t *testing.T) {
	d := validDraft(models.PlatformX)
	d.SetFiles(nil)
	require.Error(t, d.Validate())
}

func TestValidate_ShortFormBoundary(t *testing.T) {
	tests := []struct {
		platform string
		length   int
		wantErr  bool
	}{
		{models.PlatformX, 140, false},
		{models.PlatformX, 141, true},
		{models.PlatformThreads, 140, false},
		{models.PlatformThreads, 141, true},
		{models.PlatformFacebook, 141, false},
		{models.PlatformLinkedin, 500, false},
	}

	for _, tt := range tests {
		d := validDraft(tt.platform)
		d.SetContent(strings.Repeat("a", tt.length))

		err := d.Validate()
		if tt.wantErr {
			assert.Error(t, err, "%s/%d", tt.platform, tt.length)
		} else {
			assert.NoError(t, err, "%s/%d", tt.platform, tt.length)
		}
	}
}

func TestValidate_ShortFormCountsRunes(t *testing.T) {
	d := validDraft(models.PlatformX)
	// 140 multi-byte runes must pass; the cap is characters, not bytes.
	d.SetContent(strings.Repeat("日", 140))
	assert.NoError(t, d.Validate())

	d.SetContent(strings.Repeat("日", 141))
	assert.Error(t, d.Validate())
}

func TestValidate_MultiFileOnlyInstagram(t *testing.T) {
	d := validDraft(models.PlatformInstagram)
	d.SetFiles(fileHeaders(3))
	assert.NoError(t, d.Validate())

	d = validDraft(models.PlatformX)
	d.SetFiles(fileHeaders(2))
	assert.Error(t, d.Validate())
}

func TestSelectPlatform_NormalizesTwitter(t *testing.T) {
	d := NewDraft()
	d.SelectPlatform("twitter")
	assert.Equal(t, models.PlatformX, d.Platform())
}

func TestSelectPlatform_ResetsJobUpdate(t *testing.T) {
	d := NewDraft()
	d.SelectPlatform(models.PlatformLinkedin)
	d.ToggleJobUpdate(true)
	require.True(t, d.IsJobUpdate())

	for _, platform := range []string{models.PlatformX, models.PlatformInstagram, models.PlatformFacebook, models.PlatformThreads} {
		d.SelectPlatform(models.PlatformLinkedin)
		d.ToggleJobUpdate(true)

		d.SelectPlatform(platform)
		assert.False(t, d.IsJobUpdate(), "platform %s should reset job update", platform)
	}
}

func TestToggleJobUpdate_IgnoredOffLinkedin(t *testing.T) {
	d := NewDraft()
	d.SelectPlatform(models.PlatformX)
	d.ToggleJobUpdate(true)
	assert.False(t, d.IsJobUpdate())
}
