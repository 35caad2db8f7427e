package tracelog

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/objtap/object-intercept-go/intercept"
)

// ErrEncodingEvent is returned by the JSON observer when an event cannot be
// encoded or written.
var ErrEncodingEvent = errors.New("encoding operation event failed")

// eventRecord is the wire shape of one observed operation: one JSON object
// per line. Subjects are rendered through intercept.DescribeSubject so cyclic
// object graphs never recurse into the encoder.
type eventRecord struct {
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Property string `json:"property,omitempty"`
	Subject  string `json:"subject"`
}

// NewJSONObserver builds an observer that appends one JSON line per event to
// w. Encoding or write failures are reported back through the observer error
// channel and therefore surface to the operation's caller.
func NewJSONObserver(w io.Writer) intercept.Observer {
	encoder := jsoniter.ConfigFastest.NewEncoder(w)

	return func(e intercept.OperationEvent) error {
		record := eventRecord{
			Label:   e.Label,
			Kind:    e.Kind.String(),
			Subject: intercept.DescribeSubject(e.Subject),
		}

		if e.Kind.PropertyScoped() {
			record.Property = e.Property.String()
		}

		if err := encoder.Encode(record); err != nil {
			return errors.Join(ErrEncodingEvent, err)
		}

		return nil
	}
}
