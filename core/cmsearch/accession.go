// core/cmsearch/accession.go
package cmsearch

import "strings"

// Database tags seen in NCBI-style pipe-delimited identifiers, e.g.
// "gb|AY123456.1|AY123456" or "gi|1234|ref|NM_000797.4|".
var accessionTags = map[string]bool{
	"gb":  true,
	"gi":  true,
	"emb": true,
	"dbj": true,
	"ref": true,
	"sp":  true,
	"pir": true,
	"prf": true,
	"tpg": true,
	"lcl": true,
	"gnl": true,
}

// ExtractAccession pulls an accession out of a raw sequence name when the
// name looks like a pipe-delimited database identifier. It is best effort:
// any name it does not recognize comes back unchanged.
func ExtractAccession(name string) string {
	if !strings.ContainsRune(name, '|') {
		return name
	}
	fields := strings.Split(name, "|")
	// Prefer a non-numeric accession over a bare gi number.
	for i := 0; i+1 < len(fields); i++ {
		if fields[i] != "gi" && accessionTags[fields[i]] && fields[i+1] != "" {
			return fields[i+1]
		}
	}
	for i := 0; i+1 < len(fields); i++ {
		if accessionTags[fields[i]] && fields[i+1] != "" {
			return fields[i+1]
		}
	}
	return name
}
