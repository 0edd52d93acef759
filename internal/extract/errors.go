package extract

import "fmt"

// UnsupportedFormatError reports a file extension outside txt/pdf/docx/doc.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported file format: (none)"
	}
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// EmptyContentError reports a file that decoded but yielded no usable text.
type EmptyContentError struct {
	Format Format
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("no text could be extracted from the %s file; it may be image-based or empty", formatName(e.Format))
}

// MissingDecoderError reports that no decoder is configured for a format.
type MissingDecoderError struct {
	Format Format
}

func (e *MissingDecoderError) Error() string {
	return fmt.Sprintf("no %s decoder is available; configure one on the extractor", formatName(e.Format))
}

func formatName(f Format) string {
	if f == "" {
		return "unknown"
	}
	return string(f)
}
