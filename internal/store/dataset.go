package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/d60-Lab/orkud/internal/model"
)

// ErrCorruptSnapshot marks a snapshot that exists but cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Dataset holds the six raw collections. Its JSON form is the snapshot
// document written by every sink.
type Dataset struct {
	Users          *Collection[*model.User]          `json:"users"`
	Posts          *Collection[*model.Post]          `json:"posts"`
	Comments       *Collection[*model.Comment]       `json:"comments"`
	Likes          *Collection[*model.Like]          `json:"likes"`
	Follows        *Collection[*model.Follow]        `json:"follows"`
	SupportTickets *Collection[*model.SupportTicket] `json:"supportTickets"`
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	d := &Dataset{}
	d.fill()
	return d
}

// fill replaces absent collections with empty ones, so older snapshots that
// predate a collection still load.
func (d *Dataset) fill() {
	if d.Users == nil {
		d.Users = NewCollection[*model.User]()
	}
	if d.Posts == nil {
		d.Posts = NewCollection[*model.Post]()
	}
	if d.Comments == nil {
		d.Comments = NewCollection[*model.Comment]()
	}
	if d.Likes == nil {
		d.Likes = NewCollection[*model.Like]()
	}
	if d.Follows == nil {
		d.Follows = NewCollection[*model.Follow]()
	}
	if d.SupportTickets == nil {
		d.SupportTickets = NewCollection[*model.SupportTicket]()
	}
}

// Empty reports whether every collection is empty.
func (d *Dataset) Empty() bool {
	return d.Users.Len() == 0 && d.Posts.Len() == 0 && d.Comments.Len() == 0 &&
		d.Likes.Len() == 0 && d.Follows.Len() == 0 && d.SupportTickets.Len() == 0
}

// EncodeSnapshot serializes d as an indented JSON document.
func EncodeSnapshot(d *Dataset) ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a snapshot document. Any decoding failure, including
// an empty document, is reported as ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) (*Dataset, error) {
	d := &Dataset{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	d.fill()
	return d, nil
}

// Clone returns a deep copy of d.
func (d *Dataset) Clone() *Dataset {
	b, err := json.Marshal(d)
	if err != nil {
		// Every field is plain data; marshalling cannot fail.
		panic(fmt.Sprintf("clone dataset: %v", err))
	}
	out, err := DecodeSnapshot(b)
	if err != nil {
		panic(fmt.Sprintf("clone dataset: %v", err))
	}
	return out
}
