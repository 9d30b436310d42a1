package bip32

import (
	"fmt"
	"strconv"
	"strings"
)

// DerivationPath is a sequence of BIP-32 child indices.
type DerivationPath []uint32

// ParsePath parses a path string of the form "m/44'/3'/0'/0/5" or
// "M/0/1". A leading lowercase "m" signals a private walk; a leading
// capital "M" signals the caller wants the public-neutered form of the
// final node (outPrivKey=false). Apostrophe or "h"/"H" suffixes mark
// hardened indices.
func ParsePath(path string) (indices DerivationPath, wantPublic bool, err error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	switch {
	case path == "m" || path == "M":
		return DerivationPath{}, path == "M", nil
	case strings.HasPrefix(path, "m/"):
		wantPublic = false
		path = path[2:]
	case strings.HasPrefix(path, "M/"):
		wantPublic = true
		path = path[2:]
	default:
		return nil, false, fmt.Errorf("%w: path must start with 'm' or 'M'", ErrInvalidPath)
	}

	parts := strings.Split(path, "/")
	result := make(DerivationPath, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, false, fmt.Errorf("%w: empty path component", ErrInvalidPath)
		}
		idx, err := parsePathComponent(part)
		if err != nil {
			return nil, false, err
		}
		result = append(result, idx)
	}

	return result, wantPublic, nil
}

func parsePathComponent(part string) (uint32, error) {
	hardened := false
	if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H") {
		hardened = true
		part = part[:len(part)-1]
	}

	index, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid index %q", ErrInvalidPath, part)
	}
	if hardened && index >= uint64(HardenedKeyStart) {
		return 0, fmt.Errorf("%w: index too large for hardened derivation", ErrInvalidPath)
	}

	idx := uint32(index)
	if hardened {
		idx += HardenedKeyStart
	}
	return idx, nil
}

// String renders the path back to "m/44'/3'/..." form.
func (p DerivationPath) String() string {
	parts := make([]string, 0, len(p)+1)
	parts = append(parts, "m")
	for _, idx := range p {
		if IsHardened(idx) {
			parts = append(parts, fmt.Sprintf("%d'", idx-HardenedKeyStart))
		} else {
			parts = append(parts, fmt.Sprintf("%d", idx))
		}
	}
	return strings.Join(parts, "/")
}

// DeriveFromPath walks k through each index in path in order.
func (k *ExtendedKey) DeriveFromPath(path DerivationPath) (*ExtendedKey, error) {
	current := k
	for _, idx := range path {
		child, err := current.Child(idx)
		if err != nil {
			return nil, fmt.Errorf("derivation failed at index %d: %w", idx, err)
		}
		current = child
	}
	return current, nil
}

// DeriveFromPathString parses pathStr and walks k accordingly, returning
// the public-neutered form of the result when pathStr's leading token is
// capital "M".
func (k *ExtendedKey) DeriveFromPathString(pathStr string) (*ExtendedKey, error) {
	path, wantPublic, err := ParsePath(pathStr)
	if err != nil {
		return nil, err
	}

	result, err := k.DeriveFromPath(path)
	if err != nil {
		return nil, err
	}
	if wantPublic {
		return result.Neuter(), nil
	}
	return result, nil
}

// MustParsePath parses path and panics on error. Used only for package-
// level constants, never on user input.
func MustParsePath(path string) DerivationPath {
	p, _, err := ParsePath(path)
	if err != nil {
		panic(err)
	}
	return p
}
