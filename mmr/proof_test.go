package mmr

import (
	"reflect"
	"testing"
)

func TestInclusionProof(t *testing.T) {
	db := NewCanonicalTestDB(t)

	// H return the node hash for index i from the canonical test tree.
	//
	// The canonical test tree has the hashes for all the positions, including
	// the interior nodes. Created by mandraulically hasing nodes so that tree
	// concstruction can legitemately be tested against it.
	H := func(i uint64) []byte {
		return db.mustGet(i)
	}

	// the proof nodes for leaf 0
	h1 := H(1)
	h5 := H(5)
	h13 := H(13)
	// the additional proof nodes for leaf 1
	h0 := H(0)

	type args struct {
		i       uint64
		mmrSize uint64
	}
	tests := []struct {
		name    string
		args    args
		want    [][]byte
		wantErr bool
	}{
		// the 0 based tree
		// 3              14
		//              /    \
		//             /      \
		//            /        \
		//           /          \
		// 2        6            13
		//        /   \        /    \
		// 1     2     5      9     12     17
		//      / \   / \    / \   /  \   /  \
		// 0   0   1 3   4  7   8 10  11 15  16 18

		{"2 (interior node)", args{2, 26}, [][]byte{H(5), H(13)}, false},
		{"2 (interior node) smaller mmr", args{2, 11}, [][]byte{H(5)}, false},
		{"0", args{0, 26}, [][]byte{h1, h5, h13}, false},
		{"1", args{1, 26}, [][]byte{h0, h5, h13}, false},
		{"3", args{3, 26}, [][]byte{H(4), H(2), H(13)}, false},
		{"4", args{4, 26}, [][]byte{H(3), H(2), H(13)}, false},
		{"7", args{7, 26}, [][]byte{H(8), H(12), H(6)}, false},
		{"8", args{8, 26}, [][]byte{H(7), H(12), H(6)}, false},
		{"10", args{10, 26}, [][]byte{H(11), H(9), H(6)}, false},
		{"11", args{11, 26}, [][]byte{H(10), H(9), H(6)}, false},
		// Notice: this is the isolated peak, hence the short length
		{"15", args{15, 18}, [][]byte{H(16)}, false},
		{"16", args{16, 18}, [][]byte{H(15)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InclusionProof(db, tt.args.mmrSize-1, tt.args.i)
			if (err != nil) != tt.wantErr {
				t.Errorf("InclusionProof() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InclusionProof() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInclusionProofOutOfRange(t *testing.T) {
	db := NewCanonicalTestDB(t)
	_, err := InclusionProof(db, 10, 20)
	if err == nil {
		t.Errorf("expected an error for an out of range index")
	}
}
