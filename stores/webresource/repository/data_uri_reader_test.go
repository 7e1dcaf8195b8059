package repository

import (
	"reflect"
	"testing"

	bCtx "github.com/mysterymart/goapi/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
		{
			name:    "no comma",
			uri:     "data:application/json;base64",
			wantErr: true,
		},
		{
			name: "plain json",
			uri:  `data:application/json;utf8,{"name":"Box #1","description":"first","image":"ipfs://QmcsrQJMKA9qC9GcEMgdjb9LPN99iDNAg8aQQJLJGpkHxk/1.svg"}`,
			want: []byte(`{"name":"Box #1","description":"first","image":"ipfs://QmcsrQJMKA9qC9GcEMgdjb9LPN99iDNAg8aQQJLJGpkHxk/1.svg"}`),
		},
		{
			name: "base64 json",
			uri:  "data:application/json;base64,eyJuYW1lIjoiQm94ICMyIn0=",
			want: []byte(`{"name":"Box #2"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDataUriReaderRepo()
			ctx := bCtx.Background()
			got, err := r.Get(ctx, tt.uri)
			if (err != nil) != tt.wantErr {
				t.Errorf("dataUriReaderRepo.Get() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dataUriReaderRepo.Get() = %v, want %v", got, tt.want)
			}
		})
	}
}
