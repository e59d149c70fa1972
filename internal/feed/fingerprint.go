package feed

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// fingerprintNamespace scopes feed fingerprints so they never collide with
// other name-based UUIDs.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:dcofeed:feed"))

// Fingerprint returns a name-based UUID over the row content. Feeds built from
// identical input share a fingerprint.
func (f *Feed) Fingerprint() uuid.UUID {
	var b strings.Builder
	if f != nil {
		for _, row := range f.Rows {
			writeField(&b, strconv.Itoa(row.SequenceID))
			writeField(&b, row.ReportingLabel)
			writeField(&b, row.Format.Name)
			writeField(&b, strconv.Itoa(row.Format.Width))
			writeField(&b, strconv.Itoa(row.Format.Height))
			writeField(&b, row.Character.ID)
			writeField(&b, row.AssetFilename)
			writeField(&b, row.Headline)
			writeField(&b, row.Frame1Text)
			writeField(&b, row.SecondaryText)
			writeField(&b, row.DestinationURL)
			writeField(&b, strconv.FormatBool(row.IsDefault))
			writeField(&b, strconv.FormatBool(row.IsActive))
			b.WriteByte('\n')
		}
	}
	return uuid.NewSHA1(fingerprintNamespace, []byte(b.String()))
}

func writeField(b *strings.Builder, value string) {
	b.WriteString(strconv.Quote(value))
	b.WriteByte('\t')
}
