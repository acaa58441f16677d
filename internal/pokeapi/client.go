// pokeapi реализует service.Catalog поверх REST-каталога PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/internal/service"
)

// Фолбэк-URL спрайта, когда каталог не отдал ни одной картинки.
const spriteFallbackURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"

// Client — HTTP-клиент каталога. HTTP-клиент настраивается извне (таймауты, прокси).
type Client struct {
	client      *http.Client
	baseURL     string
	rosterLimit int
}

// New создаёт клиент каталога.
func New(client *http.Client, baseURL string, rosterLimit int) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	if rosterLimit <= 0 {
		rosterLimit = 151
	}

	return &Client{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		rosterLimit: rosterLimit,
	}
}

// Roster возвращает фиксированный список оригинальных покемонов.
func (c *Client) Roster(ctx context.Context) ([]service.RosterEntry, error) {
	const op = "pokeapi.Roster"

	var doc listResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, c.rosterLimit), &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := make([]service.RosterEntry, 0, len(doc.Results))
	for _, item := range doc.Results {
		entries = append(entries, service.RosterEntry{Name: item.Name, URL: item.URL})
	}

	return entries, nil
}

// Detail загружает и нормализует детали по URL из ростера.
func (c *Client) Detail(ctx context.Context, detailURL string) (*models.Pokemon, error) {
	const op = "pokeapi.Detail"

	p, err := c.fetchDetail(ctx, detailURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// DetailByID загружает детали по числовому идентификатору.
func (c *Client) DetailByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	const op = "pokeapi.DetailByID"

	p, err := c.fetchDetail(ctx, fmt.Sprintf("%s/pokemon/%d", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// DetailByName загружает детали по имени.
func (c *Client) DetailByName(ctx context.Context, name string) (*models.Pokemon, error) {
	const op = "pokeapi.DetailByName"

	p, err := c.fetchDetail(ctx, fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(strings.ToLower(name))))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// TypeNames возвращает список имён типов каталога.
func (c *Client) TypeNames(ctx context.Context) ([]string, error) {
	const op = "pokeapi.TypeNames"

	var doc listResponse
	if err := c.getJSON(ctx, c.baseURL+"/type", &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(doc.Results))
	for _, item := range doc.Results {
		names = append(names, item.Name)
	}

	return names, nil
}

// fetchDetail загружает детали и нормализует их в доменную запись.
func (c *Client) fetchDetail(ctx context.Context, detailURL string) (*models.Pokemon, error) {
	var doc detailResponse
	if err := c.getJSON(ctx, detailURL, &doc); err != nil {
		return nil, err
	}

	return normalize(doc), nil
}

// getJSON — общий GET с декодированием JSON.
// 404 каталога транслируется в service.ErrCatalogNotFound.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("new_request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return service.ErrCatalogNotFound
	}

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("status=%d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// normalize — маппинг внешнего формата в models.Pokemon.
//
// Картинка выбирается по приоритету: official-artwork -> home -> dream_world ->
// front_default -> сконструированный фолбэк по id.
//
// Статы берутся позиционно: индексы 0,1,2,5 -> hp,attack,defense,speed
// (special-attack/special-defense отбрасываются). Порядок зафиксирован
// апстримом; см. решение в DESIGN.md.
func normalize(doc detailResponse) *models.Pokemon {
	image := firstNonEmpty(
		doc.Sprites.Other.OfficialArtwork.FrontDefault,
		doc.Sprites.Other.Home.FrontDefault,
		doc.Sprites.Other.DreamWorld.FrontDefault,
		doc.Sprites.FrontDefault,
	)
	if image == "" {
		image = fmt.Sprintf(spriteFallbackURL, doc.ID)
	}

	types := make([]string, 0, len(doc.Types))
	for _, t := range doc.Types {
		types = append(types, t.Type.Name)
	}

	return &models.Pokemon{
		PokemonID: doc.ID,
		Name:      doc.Name,
		Image:     &image,
		HP:        statAt(doc.Stats, 0),
		Attack:    statAt(doc.Stats, 1),
		Defense:   statAt(doc.Stats, 2),
		Speed:     statAt(doc.Stats, 5),
		Height:    doc.Height,
		Weight:    doc.Weight,
		Types:     types,
	}
}

func statAt(stats []statEntry, i int) int {
	if i < len(stats) {
		return stats[i].BaseStat
	}

	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Проверка на соответствие интерфейсу Catalog.
var _ service.Catalog = (*Client)(nil)
