package lib

import (
	"fmt"
	"path/filepath"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"
)

var (
	SYMBOLS_BKT    = []byte("symbols")
	FOOTPRINTS_BKT = []byte("footprints")
)

/*
A persistent library of symbol and footprint specifications, stored
gob-encoded in bolt and mirrored into a bleve index for search
*/
type Library struct {
	root  string
	db    *bolt.DB
	index bleve.Index
}

/*
Create or open library from root
*/
func NewLibrary(root string) (*Library, error) {
	db, err := bolt.Open(filepath.Join(root, "libgen.db"), 0644, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(SYMBOLS_BKT); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(FOOTPRINTS_BKT); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	var index bleve.Index
	ipath := filepath.Join(root, "libgen.index")
	if Exists(ipath) {
		index, err = bleve.Open(ipath)
	} else {
		index, err = bleve.New(ipath, bleve.NewIndexMapping())
	}
	if err != nil {
		return nil, err
	}

	return &Library{
		root:  root,
		db:    db,
		index: index,
	}, nil
}

func NewDefaultLibrary() (*Library, error) {
	root, err := DefaultLibraryRoot()
	if err != nil {
		return nil, err
	}

	return NewLibrary(root)
}

func (l *Library) Close() error {
	l.index.Close()
	return l.db.Close()
}

/*
What bleve sees for each stored spec
*/
type specDocument struct {
	Kind        string
	Name        string
	Description string
	Tags        string
}

/*
Store a symbol specification under its name, overwriting any
previous one
*/
func (l *Library) PutSymbol(spec *SymbolSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	bytes, err := Marshal(spec)
	if err != nil {
		return err
	}

	err = l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(SYMBOLS_BKT).Put([]byte(spec.Name), bytes)
	})
	if err != nil {
		return err
	}

	return l.index.Index("symbol/"+spec.Name, specDocument{
		Kind:        "symbol",
		Name:        spec.Name,
		Description: spec.Description,
	})
}

func (l *Library) PutFootprint(spec *FootprintSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	bytes, err := Marshal(spec)
	if err != nil {
		return err
	}

	err = l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(FOOTPRINTS_BKT).Put([]byte(spec.Name), bytes)
	})
	if err != nil {
		return err
	}

	return l.index.Index("footprint/"+spec.Name, specDocument{
		Kind:        "footprint",
		Name:        spec.Name,
		Description: spec.Description,
		Tags:        spec.Tags,
	})
}

func (l *Library) Symbol(name string) (*SymbolSpec, error) {
	spec := &SymbolSpec{}
	err := l.db.View(func(tx *bolt.Tx) error {
		bytes := tx.Bucket(SYMBOLS_BKT).Get([]byte(name))
		if bytes == nil {
			return fmt.Errorf("no symbol named %q in the library", name)
		}

		return Unmarshal(bytes, spec)
	})
	if err != nil {
		return nil, err
	}

	return spec, nil
}

func (l *Library) Footprint(name string) (*FootprintSpec, error) {
	spec := &FootprintSpec{}
	err := l.db.View(func(tx *bolt.Tx) error {
		bytes := tx.Bucket(FOOTPRINTS_BKT).Get([]byte(name))
		if bytes == nil {
			return fmt.Errorf("no footprint named %q in the library", name)
		}

		return Unmarshal(bytes, spec)
	})
	if err != nil {
		return nil, err
	}

	return spec, nil
}

/*
All stored symbols in name order, the order export assembles them in
*/
func (l *Library) Symbols() ([]*SymbolSpec, error) {
	specs := []*SymbolSpec{}
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(SYMBOLS_BKT).ForEach(func(k, v []byte) error {
			spec := &SymbolSpec{}
			if err := Unmarshal(v, spec); err != nil {
				return err
			}

			specs = append(specs, spec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return specs, nil
}

/*
Find stored specs matching a search string; returns kind-prefixed
ids like "symbol/MP1584EN"
*/
func (l *Library) Find(text string) ([]string, error) {
	query := bleve.NewMatchQuery(text)

	result, err := l.index.Search(bleve.NewSearchRequest(query))
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, nil
}
