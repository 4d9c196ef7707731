package layout

import (
	"fmt"
	"time"

	"github.com/ocrmark/ocrmark/constants"
)

// EngineName identifies the recognition engine in artifact headers.
const EngineName = "Baidu OCR"

// BuildArtifact prepends the standard artifact header (title, generation
// timestamp, engine/mode identifier, separator) to reconstructed content.
func BuildArtifact(content string, mode constants.Mode, now time.Time) string {
	header := "# OCR Result\n\n" +
		fmt.Sprintf("*Generated: %s*\n\n", now.Format("2006-01-02 15:04:05")) +
		fmt.Sprintf("*Engine: %s (%s)*\n\n", EngineName, mode) +
		"---\n\n"
	return header + content
}
