// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mateusribeiro/certidao-ocr/db/ent/schema"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/scanjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescFileName is the schema descriptor for file_name field.
	scanjobDescFileName := scanjobFields[1].Descriptor()
	// scanjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	scanjob.FileNameValidator = scanjobDescFileName.Validators[0].(func(string) error)
	// scanjobDescPages is the schema descriptor for pages field.
	scanjobDescPages := scanjobFields[3].Descriptor()
	// scanjob.DefaultPages holds the default value on creation for the pages field.
	scanjob.DefaultPages = scanjobDescPages.Default.(int)
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[4].Descriptor()
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = func() func(string) error {
		validators := scanjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescDurationMs is the schema descriptor for duration_ms field.
	scanjobDescDurationMs := scanjobFields[8].Descriptor()
	// scanjob.DefaultDurationMs holds the default value on creation for the duration_ms field.
	scanjob.DefaultDurationMs = scanjobDescDurationMs.Default.(int64)
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[9].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
