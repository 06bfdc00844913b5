// Package provider registers the built-in and Lua resolution providers and
// assembles them into the priority chain the resolver walks.
package provider

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/auth"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/log"
	"github.com/vidgrab/vidgrab/network"
	"github.com/vidgrab/vidgrab/provider/cobalt"
	"github.com/vidgrab/vidgrab/provider/custom"
	"github.com/vidgrab/vidgrab/provider/instavideo"
	"github.com/vidgrab/vidgrab/provider/ytdlp"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/util"
	"github.com/vidgrab/vidgrab/where"
)

// Provider describes a source that can be instantiated on demand.
type Provider struct {
	ID           string
	Name         string
	IsCustom     bool
	Endpoint     string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the HTTP providers in their default priority order.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:       cobalt.ID,
			Name:     cobalt.Name,
			Endpoint: viper.GetString(key.CobaltEndpoint),
			CreateSource: func() (source.Source, error) {
				apiKey, ok := auth.Key(cobalt.ID)
				return cobalt.New(network.Client, viper.GetString(key.CobaltEndpoint), lo.Ternary(ok, mo.Some(apiKey), mo.None[string]())), nil
			},
		},
		{
			ID:       instavideo.ID,
			Name:     instavideo.Name,
			Endpoint: viper.GetString(key.InstavideoEndpoint),
			CreateSource: func() (source.Source, error) {
				return instavideo.New(network.Client, viper.GetString(key.InstavideoEndpoint)), nil
			},
		},
		{
			ID:       ytdlp.ID,
			Name:     ytdlp.Name,
			Endpoint: viper.GetString(key.YtdlpEndpoint),
			CreateSource: func() (source.Source, error) {
				return ytdlp.New(network.Client, viper.GetString(key.YtdlpEndpoint)), nil
			},
		},
	}
}

// Customs returns the Lua providers found in the sources directory.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warnf("list custom providers: %v", err)
	}
	return providers
}

// All returns the built-in providers followed by the custom ones.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by ID or name, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// Find returns the providers whose name fuzzily matches query, best match first.
func Find(query string) []*Provider {
	providers := All()
	names := lo.Map(providers, func(p *Provider, _ int) string {
		return p.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) *Provider {
		return providers[r.OriginalIndex]
	})
}

func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			Endpoint: path,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}

// Chain instantiates the sources in priority order: the configured order of
// built-in providers, then every custom provider when they are enabled.
// Unknown names in the order are reported as errors. A custom script that
// fails to load is skipped.
func Chain() ([]source.Source, error) {
	var (
		chain []source.Source
		seen  = make(map[string]bool)
	)

	for _, name := range viper.GetStringSlice(key.ProvidersOrder) {
		p, ok := Get(name)
		if !ok {
			return nil, unknownProvider(name)
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		src, err := p.CreateSource()
		if err != nil {
			if p.IsCustom {
				log.Warnf("skip provider %s: %v", p.Name, err)
				continue
			}
			return nil, err
		}
		chain = append(chain, src)
	}

	if !viper.GetBool(key.ProvidersCustom) {
		return chain, nil
	}

	for _, p := range Customs() {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		src, err := p.CreateSource()
		if err != nil {
			log.Warnf("skip provider %s: %v", p.Name, err)
			continue
		}
		chain = append(chain, src)
	}

	return chain, nil
}

func unknownProvider(name string) error {
	msg := fmt.Sprintf("unknown provider %q", name)
	if similar := Find(name); len(similar) > 0 {
		msg += fmt.Sprintf(", did you mean %q?", similar[0].Name)
	}
	return fmt.Errorf("%s (check %s)", msg, key.ProvidersOrder)
}
