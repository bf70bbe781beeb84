package intake

import "strings"

// Kind describes one submission type accepted by the intake pipeline:
// which multipart file field it reads, which attachment content types it
// accepts, which text fields must be present, and whether an upload
// failure aborts the request.
type Kind struct {
	Name           string
	FileField      string
	RequiredFields []string

	// AttachmentRequiredOnFailure makes a failed upload fatal. A posting
	// is still useful without its image, so that upload degrades to "no
	// image"; losing a candidate's CV silently is not acceptable, so the
	// application upload fails loud.
	AttachmentRequiredOnFailure bool

	Accepts func(contentType string) bool
}

var Posting = &Kind{
	Name:                        "posting",
	FileField:                   "image",
	RequiredFields:              []string{"title", "description", "location"},
	AttachmentRequiredOnFailure: false,
	Accepts: func(ct string) bool {
		return strings.HasPrefix(ct, "image/")
	},
}

var Application = &Kind{
	Name:                        "application",
	FileField:                   "cv",
	RequiredFields:              []string{"jobId", "fullName", "email", "phone", "coverLetter"},
	AttachmentRequiredOnFailure: true,
	Accepts: func(ct string) bool {
		return ct == "application/pdf" ||
			ct == "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	},
}
