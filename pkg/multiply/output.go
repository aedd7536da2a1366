package multiply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// OutputOptions names the files and messages WriteResult produces. The copy
// formats receive the 1-based copy number; the type formats receive the
// feature type first, then the copy number.
type OutputOptions struct {
	// AllFileName is the combined message holding every copy.
	AllFileName  string
	AllMessageID string
	AllComment   string

	// CopyDirFormat names the per-copy directory.
	CopyDirFormat string

	// TypeFileFormat, TypeMessageIDFormat and TypeCommentFormat shape the
	// one-message-per-feature-type files inside each copy directory.
	TypeFileFormat      string
	TypeMessageIDFormat string
	TypeCommentFormat   string

	// Namespaces adds source-document declarations to every message root,
	// keeping prefixes of carried-over subtrees resolvable.
	Namespaces [][2]string
}

// DefaultOutputOptions returns the reference dataset's layout.
func DefaultOutputOptions() OutputOptions {
	return OutputOptions{
		AllFileName:         "Donlon_Dataset_Copies_ALL.xml",
		AllMessageID:        "Donlon_Dataset_Copies_ALL",
		AllComment:          "Generated Donlon dataset copies",
		CopyDirFormat:       "Donlon_Copy_%02d",
		TypeFileFormat:      "%s_%02d.xml",
		TypeMessageIDFormat: "%s_Copy_%02d",
		TypeCommentFormat:   "%s features - Copy %02d",
	}
}

func (o OutputOptions) withDefaults() OutputOptions {
	d := DefaultOutputOptions()
	if o.AllFileName == "" {
		o.AllFileName = d.AllFileName
	}
	if o.AllMessageID == "" {
		o.AllMessageID = d.AllMessageID
	}
	if o.AllComment == "" {
		o.AllComment = d.AllComment
	}
	if o.CopyDirFormat == "" {
		o.CopyDirFormat = d.CopyDirFormat
	}
	if o.TypeFileFormat == "" {
		o.TypeFileFormat = d.TypeFileFormat
	}
	if o.TypeMessageIDFormat == "" {
		o.TypeMessageIDFormat = d.TypeMessageIDFormat
	}
	if o.TypeCommentFormat == "" {
		o.TypeCommentFormat = d.TypeCommentFormat
	}
	return o
}

// WriteResult writes the generated copies under dir: first one combined
// message holding every instance, then one directory per instance with one
// message per feature type, features grouped in collection order.
//
// The combined file must reach disk before the per-copy messages are
// assembled; assembly moves feature elements, so the per-type documents
// take them out of the combined one. The result is consumed.
func WriteResult(result *Result, dir string, opts OutputOptions) error {
	opts = opts.withDefaults()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var all []*aixm.Feature
	for _, inst := range result.Instances {
		all = append(all, inst.Features...)
	}
	combined := aixm.NewMessage(all, aixm.MessageOptions{
		ID:         opts.AllMessageID,
		Comment:    opts.AllComment,
		Namespaces: opts.Namespaces,
	})
	if err := combined.WriteToFile(filepath.Join(dir, opts.AllFileName)); err != nil {
		return err
	}

	for _, inst := range result.Instances {
		if err := writeInstance(inst, dir, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeInstance(inst *Instance, dir string, opts OutputOptions) error {
	n := inst.Index + 1
	copyDir := filepath.Join(dir, fmt.Sprintf(opts.CopyDirFormat, n))
	if err := os.MkdirAll(copyDir, 0o755); err != nil {
		return fmt.Errorf("create copy directory: %w", err)
	}

	// Group by type; type order follows first appearance.
	groups := make(map[aixm.FeatureType][]*aixm.Feature)
	var order []aixm.FeatureType
	for _, f := range inst.Features {
		if _, seen := groups[f.Type()]; !seen {
			order = append(order, f.Type())
		}
		groups[f.Type()] = append(groups[f.Type()], f)
	}

	for _, t := range order {
		msg := aixm.NewMessage(groups[t], aixm.MessageOptions{
			ID:         fmt.Sprintf(opts.TypeMessageIDFormat, t, n),
			Comment:    fmt.Sprintf(opts.TypeCommentFormat, t, n),
			Namespaces: opts.Namespaces,
		})
		path := filepath.Join(copyDir, fmt.Sprintf(opts.TypeFileFormat, t, n))
		if err := msg.WriteToFile(path); err != nil {
			return err
		}
	}
	return nil
}
