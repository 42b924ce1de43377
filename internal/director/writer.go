package director

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Render serializes a slideshow in the line-oriented background XML format.
func Render(show *Slideshow) string {
	var b strings.Builder

	b.WriteString("<background>\n")
	b.WriteString("-\n")
	writeStartTime(&b, show)

	for _, slide := range show.Slides {
		b.WriteString("-\n")
		b.WriteString("<static>\n")
		b.WriteString(fmt.Sprintf("<duration>%.1f</duration>\n", slide.Static.Duration))
		b.WriteString(fmt.Sprintf("<file>%s</file>\n", slide.Static.File))
		b.WriteString("</static>\n")

		b.WriteString("-\n")
		b.WriteString("<transition>\n")
		b.WriteString(fmt.Sprintf("<duration>%d</duration>\n", slide.Transition.Duration))
		b.WriteString(fmt.Sprintf("<from>%s</from>\n", slide.Transition.From))
		b.WriteString(fmt.Sprintf("<to>%s</to>\n", slide.Transition.To))
		b.WriteString("</transition>\n")
	}

	b.WriteString("</background>\n")

	return b.String()
}

func writeStartTime(b *strings.Builder, show *Slideshow) {
	t := show.StartTime
	b.WriteString("<starttime>\n")
	b.WriteString(fmt.Sprintf("<year>%04d</year>\n", t.Year()))
	b.WriteString(fmt.Sprintf("<month>%02d</month>\n", int(t.Month())))
	b.WriteString(fmt.Sprintf("<day>%02d</day>\n", t.Day()))
	b.WriteString(fmt.Sprintf("<hour>%02d</hour>\n", t.Hour()))
	b.WriteString(fmt.Sprintf("<minute>%02d</minute>\n", t.Minute()))
	b.WriteString(fmt.Sprintf("<second>%02d</second>\n", t.Second()))
	b.WriteString("</starttime>\n")
}

// WriteDescriptor writes descriptor text to path, replacing any existing file.
func WriteDescriptor(fs afero.Fs, path, content string) error {
	return afero.WriteFile(fs, path, []byte(content), 0644)
}

// ReadDescriptor reads descriptor text back from path.
func ReadDescriptor(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
