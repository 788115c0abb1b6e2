package tile

import (
	"encoding/json"
	"testing"
)

func TestMarshalTile(t *testing.T) {
	marshalTileTests := []struct {
		Tile
		want   string
		wantOk bool
	}{
		{},
		{
			Tile:   Frames,
			want:   `"frames"`,
			wantOk: true,
		},
		{
			Tile: 99,
		},
	}
	for i, test := range marshalTileTests {
		got, err := json.Marshal(test.Tile)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != string(got):
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, string(got))
		}
	}
}

func TestUnmarshalTile(t *testing.T) {
	unmarshalTileTests := []struct {
		json   string
		want   Tile
		wantOk bool
	}{
		{
			json: `"XYZ"`,
		},
		{
			json: `cats`,
		},
		{
			json: `1`,
		},
		{
			json:   `"books"`,
			want:   Books,
			wantOk: true,
		},
		{
			json:   `"games"`,
			want:   Games,
			wantOk: true,
		},
	}
	for i, test := range unmarshalTileTests {
		var got Tile
		err := json.Unmarshal([]byte(test.json), &got)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != got:
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}
