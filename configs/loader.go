package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type Source struct {
	Name    string
	Content []byte
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() ([]Source, error) {
		var sources []Source
		for _, filePath := range filePaths {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, err
			}
			sources = append(sources, Source{
				Name:    filePath,
				Content: content,
			})
		}
		return sources, nil
	})
}

func NewSourceLoader(schemaSrc string, sources ...Source) Loader {
	return newLoader(schemaSrc, func() ([]Source, error) {
		return sources, nil
	})
}

func newLoader(schemaSrc string, getSources func() ([]Source, error)) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			sources, err := getSources()
			if err != nil {
				return nil, err
			}

			// schema and values must share one runtime to unify
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			for _, source := range sources {
				value := ctx.CompileBytes(
					source.Content,
					cue.Filename(source.Name),
				)
				if err = value.Err(); err != nil {
					return nil, fmt.Errorf("%s: %w", source.Name, err)
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("%s: %w", source.Name, err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  source.Name,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return ret, nil
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if !value.Exists() || value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				break
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
