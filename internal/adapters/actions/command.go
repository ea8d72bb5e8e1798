package actions

import "strings"

var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

// escapeData escapes the message part of a workflow command.
func escapeData(s string) string {
	return dataEscaper.Replace(s)
}

// escapeProperty escapes a property value of a workflow command.
func escapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}

// formatCommand renders a workflow command line, e.g. "::set-output name=key::value".
// Properties are rendered in the order given.
func formatCommand(command string, properties [][2]string, message string) string {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(command)
	sep := byte(' ')
	for _, prop := range properties {
		if prop[1] == "" {
			continue
		}
		b.WriteByte(sep)
		sep = ','
		b.WriteString(prop[0])
		b.WriteByte('=')
		b.WriteString(escapeProperty(prop[1]))
	}
	b.WriteString("::")
	b.WriteString(escapeData(message))
	return b.String()
}
