package models

// PDFOptions is the fixed layout used for quiz result exports.
type PDFOptions struct {
	Margin       float64
	Filename     string
	ImageType    string
	ImageQuality float64
	Scale        float64
	Unit         string
	Format       string
	Orientation  string
}

const DefaultPDFFilename = "hasil_kuis_GeneratorKu.pdf"

func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Margin:       10,
		Filename:     DefaultPDFFilename,
		ImageType:    "jpeg",
		ImageQuality: 0.98,
		Scale:        2,
		Unit:         "mm",
		Format:       "a4",
		Orientation:  "portrait",
	}
}

// ResultsRegion is the captured content of the results page that gets exported.
type ResultsRegion struct {
	Title    string           `json:"title" binding:"required"`
	Filename string           `json:"filename"`
	Sections []ResultsSection `json:"sections" binding:"required,min=1,dive"`
}

type ResultsSection struct {
	Heading string   `json:"heading" binding:"required"`
	Lines   []string `json:"lines"`
}
