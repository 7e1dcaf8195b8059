package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/mocks"
)

func newReaders() map[string]*mocks.WebResourceReaderRepository {
	return map[string]*mocks.WebResourceReaderRepository{
		"http":    {},
		"ipfs":    {},
		"datauri": {},
	}
}

func newUseCase(readers map[string]*mocks.WebResourceReaderRepository) domain.MetadataUseCase {
	return NewMetadataUseCase(&MetadataUseCaseCfg{
		HttpReader:    readers["http"],
		IpfsReader:    readers["ipfs"],
		DataUriReader: readers["datauri"],
	})
}

func Test_metadataUseCase_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		calledReader string
		url          string
		calledUrl    string
		body         []byte
		want         *domain.Metadata
		wantErr      bool
	}{
		{
			name:    "unsupported schema",
			url:     "ftp://url",
			wantErr: true,
		},
		{
			name:         "ipfs schema strips prefix",
			calledReader: "ipfs",
			url:          "ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0",
			calledUrl:    "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0",
			body:         []byte(`{"image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ","attributes":[{"trait_type":"Fur","value":"Robot"}]}`),
			want: &domain.Metadata{
				Image:      "ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ",
				Attributes: []domain.Attribute{{TraitType: "Fur", Value: "Robot"}},
			},
		},
		{
			name:         "https schema",
			calledReader: "http",
			url:          "https://host/metadata.json",
			calledUrl:    "https://host/metadata.json",
			body:         []byte(`{"name":"REBIRTH","description":"No. 6"}`),
			want:         &domain.Metadata{Name: "REBIRTH", Description: "No. 6"},
		},
		{
			name:         "invalid json is non-fatal",
			calledReader: "http",
			url:          "https://host/broken.json",
			calledUrl:    "https://host/broken.json",
			body:         []byte(`not json`),
			want:         &domain.Metadata{},
			wantErr:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			readers := newReaders()
			if len(tt.calledReader) > 0 {
				readers[tt.calledReader].
					On("Get", mock.Anything, tt.calledUrl).
					Return(tt.body, nil)
			}
			u := newUseCase(readers)
			ctx := bCtx.Background()
			got, err := u.Resolve(ctx, tt.url)
			if tt.wantErr {
				req.ErrorIs(err, domain.ErrMetadataUnavailable)
				req.Equal(&domain.Metadata{}, got)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func Test_metadataUseCase_Resolve_cached(t *testing.T) {
	req := require.New(t)
	readers := newReaders()
	readers["http"].
		On("Get", mock.Anything, "https://host/metadata.json").
		Return([]byte(`{"name":"once"}`), nil).
		Once()
	u := newUseCase(readers)
	ctx := bCtx.Background()

	first, err := u.Resolve(ctx, "https://host/metadata.json")
	req.NoError(err)
	second, err := u.Resolve(ctx, "https://host/metadata.json")
	req.NoError(err)
	req.Equal(first, second)
	readers["http"].AssertExpectations(t)
}

func Test_metadataUseCase_ResolveAll(t *testing.T) {
	req := require.New(t)
	readers := newReaders()
	readers["http"].
		On("Get", mock.Anything, "https://host/0.json").
		Return([]byte(`{"name":"zero"}`), nil)
	readers["http"].
		On("Get", mock.Anything, "https://host/1.json").
		Return(nil, errors.New("boom"))
	readers["http"].
		On("Get", mock.Anything, "https://host/2.json").
		Return([]byte(`{"name":"two"}`), nil)
	u := newUseCase(readers)
	ctx := bCtx.Background()

	got := u.ResolveAll(ctx, []string{"https://host/0.json", "https://host/1.json", "https://host/2.json"})
	req.Len(got, 3)
	req.Equal("zero", got[0].Name)
	// failed entry comes back empty, order preserved
	req.Equal(&domain.Metadata{}, got[1])
	req.Equal("two", got[2].Name)
}
