package intake

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// MaxAttachmentSize caps the single buffered attachment at 10 MiB.
const MaxAttachmentSize = 10 << 20

// Attachment is the one file a submission may carry, fully buffered.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Form is the decoded multipart submission: text fields plus at most one
// attachment matching the kind's file field and content-type gate.
type Form struct {
	Fields     map[string]string
	Attachment *Attachment
}

// DecodeRequest parses the request's multipart body for the given kind.
func DecodeRequest(r *http.Request, kind *Kind) (*Form, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fail(MalformedForm, fmt.Errorf("expected multipart/form-data, got %q", r.Header.Get("Content-Type")))
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, fail(MalformedForm, fmt.Errorf("missing multipart boundary"))
	}
	return Decode(r.Body, boundary, kind)
}

// Decode reads the multipart stream part by part. Text fields are
// collected verbatim. File parts are only buffered when they arrive on
// the kind's file field with an accepted content type; anything else is
// drained and discarded. A part whose content type fails the gate counts
// as "no attachment", not as an error.
func Decode(body io.Reader, boundary string, kind *Kind) (*Form, error) {
	mr := multipart.NewReader(body, boundary)
	form := &Form{Fields: make(map[string]string)}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fail(MalformedForm, fmt.Errorf("reading form part: %w", err))
		}

		if part.FileName() == "" {
			val, err := io.ReadAll(part)
			if err != nil {
				part.Close()
				return nil, fail(MalformedForm, fmt.Errorf("reading field %q: %w", part.FormName(), err))
			}
			form.Fields[part.FormName()] = string(val)
			part.Close()
			continue
		}

		wanted := part.FormName() == kind.FileField &&
			kind.Accepts(part.Header.Get("Content-Type")) &&
			form.Attachment == nil
		if !wanted {
			io.Copy(io.Discard, part)
			part.Close()
			continue
		}

		data, err := readCapped(part, MaxAttachmentSize)
		part.Close()
		if err != nil {
			return nil, err
		}
		form.Attachment = &Attachment{
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	return form, nil
}

func readCapped(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fail(MalformedForm, fmt.Errorf("reading file part: %w", err))
	}
	if int64(len(data)) > max {
		return nil, fail(PayloadTooLarge, fmt.Errorf("attachment exceeds %d bytes", max))
	}
	return data, nil
}

// Validate checks that every required field of the kind is present and
// non-empty. Presence only: no trimming and no format checks, matching
// the accepted behavior of the original form handlers.
func Validate(form *Form, kind *Kind) error {
	var missing []string
	for _, name := range kind.RequiredFields {
		if form.Fields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fail(ValidationFailed, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}
