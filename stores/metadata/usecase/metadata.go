package usecase

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/log"
	"github.com/mysterymart/goapi/domain"
)

const resolveConcurrency = 10

type MetadataUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	CacheTtl      time.Duration
}

type metadataUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	cache         *gocache.Cache
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	ttl := cfg.CacheTtl
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &metadataUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		cache:         gocache.New(ttl, 2*ttl),
	}
}

func (u *metadataUseCase) Resolve(c bCtx.Ctx, rawUrl string) (*domain.Metadata, error) {
	if cached, ok := u.cache.Get(rawUrl); ok {
		return cached.(*domain.Metadata), nil
	}

	data, err := u.fetch(c, rawUrl)
	if err != nil {
		return &domain.Metadata{}, domain.ErrMetadataUnavailable
	}

	metadata := &domain.Metadata{}
	if err := json.Unmarshal(data, metadata); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to unmarshal metadata")
		return &domain.Metadata{}, domain.ErrMetadataUnavailable
	}

	u.cache.SetDefault(rawUrl, metadata)
	return metadata, nil
}

func (u *metadataUseCase) ResolveAll(c bCtx.Ctx, urls []string) []*domain.Metadata {
	if len(urls) == 0 {
		return nil
	}

	b := goroutines.NewBatch(resolveConcurrency, goroutines.WithBatchSize(len(urls)))
	defer b.Close()
	for i := 0; i < len(urls); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			metadata, err := u.Resolve(c, urls[idx])
			if err != nil {
				metadata = &domain.Metadata{}
			}
			return &indexedMetadata{idx: idx, metadata: metadata}, nil
		})
	}
	b.QueueComplete()

	result := make([]*domain.Metadata, len(urls))
	for ret := range b.Results() {
		im := ret.Value().(*indexedMetadata)
		result[im.idx] = im.metadata
	}
	return result
}

type indexedMetadata struct {
	idx      int
	metadata *domain.Metadata
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	var data []byte
	if pUrl.Scheme == "https" || pUrl.Scheme == "http" {
		data, err = u.httpReader.Get(c, rawUrl)
	} else if pUrl.Scheme == "ipfs" {
		data, err = u.ipfsReader.Get(c, strings.TrimPrefix(rawUrl, "ipfs://"))
	} else if pUrl.Scheme == "data" {
		data, err = u.dataUriReader.Get(c, rawUrl)
	} else {
		return nil, domain.ErrUnsupportedSchema
	}

	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Warn("failed to fetch")
		return nil, err
	}
	return data, nil
}
