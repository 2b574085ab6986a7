package core

import "hash/fnv"

// Hash returns the FNV-1a 32-bit digest of a filename. The hash
// function is part of the output contract: changing it redistributes
// files across replicas, so it must stay fixed.
func Hash(filename string) uint32 {
	hash := fnv.New32a()
	hash.Write([]byte(filename))
	return hash.Sum32()
}

// Partition maps a filename to a replica index in [0, count). A
// non-positive count collapses everything onto index 0 rather than
// dividing by zero; identities are validated before a run starts.
func Partition(filename string, count int) int {
	if count <= 0 {
		return 0
	}
	return int(Hash(filename) % uint32(count))
}

// Owns reports whether the replica identified by id is responsible for
// the named file. For a fixed replica count the relation is a total
// function of the filename into [0, count), so running Owns on every
// replica partitions any file set with no overlaps and no omissions,
// without any communication between replicas.
func Owns(filename string, id ReplicaIdentity) bool {
	return Partition(filename, id.Count) == id.ID
}
