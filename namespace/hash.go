package namespace

import (
	"fmt"
	"hash"
	"sort"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash digests raw bytes with the package fingerprint key.
func Hash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	return h.Sum64(), err
}

// Fingerprint digests the tree reachable from ns: paths, kinds, member names,
// origins and leaf values (dynamic type plus formatted value). Members are
// digested in name order so the result is independent of insertion order, and
// shared or cyclic containers are digested once.
func Fingerprint(ns Namespace) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	if err := fingerprint(ns, h, map[uint64]bool{}); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func fingerprint(ns Namespace, h hash.Hash64, seen map[uint64]bool) error {
	if seen[ns.ID()] {
		return nil
	}
	seen[ns.ID()] = true

	if _, err := fmt.Fprintf(h, "%s|%s{", ns.Kind(), ns.Path()); err != nil {
		return err
	}
	members := ns.Members()
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	for _, member := range members {
		if _, err := fmt.Fprintf(h, "%s@%s=", member.Name, member.Origin); err != nil {
			return err
		}
		if member.IsContainer() {
			if err := fingerprint(member.Container, h, seen); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(h, "%T:%v;", member.Leaf, member.Leaf); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(h, "}")
	return err
}
