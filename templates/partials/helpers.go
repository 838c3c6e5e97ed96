package partials

import (
	"fmt"
	"html/template"
)

// Helper function to format file size
func formatFileSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatDimension renders a length without trailing zeros, e.g. 420 or 74.25
func formatDimension(v float64) string {
	return fmt.Sprintf("%g", v)
}

// scaleStyle builds the transform used for scaled previews
func scaleStyle(scale float64) template.CSS {
	return template.CSS(fmt.Sprintf("transform: scale(%.4f); transform-origin: top left;", scale))
}

// scaledBoxStyle sizes the frame that holds a scaled surface
func scaledBoxStyle(widthMM, heightMM, scale float64) template.CSS {
	return template.CSS(fmt.Sprintf("width: calc(%gmm * %.4f); height: calc(%gmm * %.4f);", widthMM, scale, heightMM, scale))
}

var templateFuncs = template.FuncMap{
	"fileSize":       formatFileSize,
	"dimension":      formatDimension,
	"scaleStyle":     scaleStyle,
	"scaledBoxStyle": scaledBoxStyle,
}
