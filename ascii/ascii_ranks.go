package ascii

// unitRank ranks ASCII code units by how often they occur in running text.
// Lower rank = rarer unit = better filter candidate when scanning for a
// needle. Units at or above 0x80 are never ranked; they are treated as rank 0
// because any non-ASCII unit in a mostly-ASCII haystack is the best filter.
var unitRank = [128]byte{
	// 0x00-0x0F: control characters (tab, LF and CR are common)
	55, 52, 51, 50, 49, 48, 47, 46, 45, 103, 242, 66, 67, 229, 44, 43,
	// 0x10-0x1F
	42, 41, 40, 39, 38, 37, 36, 35, 34, 33, 56, 32, 31, 30, 29, 28,
	// 0x20-0x2F: ' ' ! " # $ % & ' ( ) * + , - . /
	255, 148, 164, 149, 136, 160, 155, 173, 221, 222, 134, 122, 232, 202, 215, 224,
	// 0x30-0x3F: 0-9 : ; < = > ?
	208, 220, 204, 187, 183, 179, 177, 168, 178, 200, 226, 195, 154, 184, 174, 126,
	// 0x40-0x4F: @ A-O
	120, 191, 157, 194, 170, 189, 162, 161, 150, 193, 142, 137, 171, 176, 185, 167,
	// 0x50-0x5F: P-Z [ \ ] ^ _
	186, 112, 175, 192, 188, 156, 140, 143, 123, 133, 128, 147, 138, 146, 114, 223,
	// 0x60-0x6F: ` a-o
	151, 249, 216, 238, 236, 253, 227, 218, 230, 247, 135, 180, 241, 233, 246, 244,
	// 0x70-0x7F: p-z { | } ~ DEL
	231, 139, 245, 243, 251, 235, 201, 196, 240, 214, 152, 182, 205, 181, 127, 27,
}

// caseFoldRank is the case-insensitive variant of unitRank: a letter's rank is
// the sum of its upper and lower case ranks.
var caseFoldRank [128]uint16

func init() {
	for u := 0; u < len(unitRank); u++ {
		caseFoldRank[u] = uint16(unitRank[u])
	}
	for u := 'A'; u <= 'Z'; u++ {
		sum := uint16(unitRank[u]) + uint16(unitRank[u+0x20])
		caseFoldRank[u] = sum
		caseFoldRank[u+0x20] = sum
	}
}

func rankOf(u uint16, caseSensitive bool) uint16 {
	if u >= 0x80 {
		return 0
	}
	if caseSensitive {
		return uint16(unitRank[u])
	}
	return caseFoldRank[u]
}

// toUpper converts ASCII lowercase to uppercase; every other unit is returned
// unchanged.
func toUpper(u uint16) uint16 {
	if u >= 'a' && u <= 'z' {
		return u - 0x20
	}
	return u
}

// toLower converts ASCII uppercase to lowercase.
func toLower(u uint16) uint16 {
	if u >= 'A' && u <= 'Z' {
		return u + 0x20
	}
	return u
}

// ToUpper is the exported form of the ASCII-only upper mapping.
func ToUpper(u uint16) uint16 { return toUpper(u) }

// ToLower is the exported form of the ASCII-only lower mapping.
func ToLower(u uint16) uint16 { return toLower(u) }
