package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwns_Deterministic(t *testing.T) {
	id := ReplicaIdentity{ID: 1, Count: 3}

	first := Owns("report.txt", id)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Owns("report.txt", id))
	}
}

func TestOwns_PartitionIsCompleteAndDisjoint(t *testing.T) {
	var files []string
	for i := 0; i < 500; i++ {
		files = append(files, fmt.Sprintf("file-%03d.txt", i))
	}
	files = append(files, "", "a", "データ.txt", "with spaces.txt")

	for _, count := range []int{1, 2, 3, 5, 8, 17} {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			for _, file := range files {
				owners := 0
				for id := 0; id < count; id++ {
					if Owns(file, ReplicaIdentity{ID: id, Count: count}) {
						owners++
					}
				}
				// Exactly one replica must claim each file.
				require.Equal(t, 1, owners, "file %q has %d owners with count %d", file, owners, count)
			}
		})
	}
}

func TestOwns_SingleReplicaOwnsEverything(t *testing.T) {
	id := ReplicaIdentity{ID: 0, Count: 1}

	for _, file := range []string{"", "a.txt", "b.txt", "anything"} {
		require.True(t, Owns(file, id))
	}
}

func TestOwns_ZeroValueIdentityDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		Owns("report.txt", ReplicaIdentity{})
	})
	require.Equal(t, 0, Partition("report.txt", 0))
	require.Equal(t, 0, Partition("report.txt", -2))
}

func TestOwns_EmptyFilenameIsValidKey(t *testing.T) {
	count := 4
	owners := 0
	for id := 0; id < count; id++ {
		if Owns("", ReplicaIdentity{ID: id, Count: count}) {
			owners++
		}
	}
	require.Equal(t, 1, owners)
}

func TestReplicaIdentity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      ReplicaIdentity
		wantErr bool
	}{
		{"single replica", ReplicaIdentity{ID: 0, Count: 1}, false},
		{"last replica", ReplicaIdentity{ID: 4, Count: 5}, false},
		{"zero count", ReplicaIdentity{ID: 0, Count: 0}, true},
		{"negative count", ReplicaIdentity{ID: 0, Count: -1}, true},
		{"negative id", ReplicaIdentity{ID: -1, Count: 3}, true},
		{"id equal to count", ReplicaIdentity{ID: 3, Count: 3}, true},
		{"id above count", ReplicaIdentity{ID: 7, Count: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
