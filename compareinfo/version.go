package compareinfo

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// sortNamespace scopes the name-based sort IDs of this package.
var sortNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mhr3/collation/sort"))

// SortVersion identifies the collation that produced a sort key. Keys
// produced under different versions must not be compared.
type SortVersion struct {
	// FullVersion packs the Unicode version of the collation data as
	// major<<24 | minor<<16 | patch<<8, with the mode in the low byte.
	FullVersion int
	// SortID is derived from the mode and canonical locale name.
	SortID uuid.UUID
}

func (v SortVersion) String() string {
	return strconv.Itoa(v.FullVersion) + "/" + v.SortID.String()
}

// Version returns the sort version of c.
func (c *CompareInfo) Version() SortVersion {
	return SortVersion{
		FullVersion: unicodeVersion()<<8 | int(c.mode),
		SortID:      uuid.NewSHA1(sortNamespace, []byte(c.mode.String()+"/"+c.tag.String())),
	}
}

// unicodeVersion packs norm.Version ("15.0.0") as major<<16 | minor<<8 | patch.
func unicodeVersion() int {
	v := 0
	parts := strings.SplitN(norm.Version, ".", 3)
	for i := 0; i < 3; i++ {
		n := 0
		if i < len(parts) {
			n, _ = strconv.Atoi(parts[i])
		}
		v = v<<8 | n&0xFF
	}
	return v
}
