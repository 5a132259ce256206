package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"wowarbitrage/config"

	"github.com/PuerkitoBio/goquery"
)

/*
Scrapes item auction stats off wowauctions.net item pages.
The pages are Next.js renders, the stats live in the __NEXT_DATA__ script.
*/

var ErrNoNextData = errors.New("page has no __NEXT_DATA__ script")

// Fetcher produces a price snapshot for one item, or nil when the site has no listing
type Fetcher interface {
	FetchItem(ctx context.Context, item Item) (*PriceSnapshot, error)
}

// WowAuctionsScraper fetches one server/realm/faction auction house
type WowAuctionsScraper struct {
	baseURL string
	server  string
	realm   string
	faction string
	loader  PageLoader
}

func NewWowAuctionsScraper(baseURL, server, realm, faction string, loader PageLoader) *WowAuctionsScraper {
	return &WowAuctionsScraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		server:  server,
		realm:   realm,
		faction: faction,
		loader:  loader,
	}
}

// ItemURL builds the item page address from its name and id
func (s *WowAuctionsScraper) ItemURL(item Item) string {
	return s.baseURL + fmt.Sprintf(config.AuctionHousePath, s.server, s.realm, s.faction, MakeSlug(item.Name), item.ID)
}

// FetchItem returns (nil, nil) when the item page does not exist or carries no stats
func (s *WowAuctionsScraper) FetchItem(ctx context.Context, item Item) (*PriceSnapshot, error) {
	html, err := s.loader.Load(ctx, s.ItemURL(item))
	if errors.Is(err, ErrPageNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	payload, err := ExtractNextData(html)
	if errors.Is(err, ErrNoNextData) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseItemPayload(item, payload)
}

// ExtractNextData returns the raw JSON embedded in the page's __NEXT_DATA__ script
func ExtractNextData(html string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	script := doc.Find(config.NextDataSelector).First()
	if script.Length() == 0 {
		return nil, ErrNoNextData
	}
	text := strings.TrimSpace(script.Text())
	if text == "" {
		return nil, ErrNoNextData
	}
	return []byte(text), nil
}

type itemStats struct {
	ItemCount     *float64        `json:"item_count"`
	MinimumBuyout *float64        `json:"minimum_buyout"`
	AvgPrice      *float64        `json:"avg_price"`
	ItemLastSeen  json.RawMessage `json:"item_last_seen"`
}

func (st itemStats) empty() bool {
	return st.ItemCount == nil && st.MinimumBuyout == nil && st.AvgPrice == nil && len(st.ItemLastSeen) == 0
}

type nextData struct {
	Props struct {
		PageProps struct {
			Item struct {
				ItemInfo struct {
					SellPrice *float64 `json:"SellPrice"`
				} `json:"item_info"`
				Stats *itemStats `json:"stats"`
			} `json:"item"`
		} `json:"pageProps"`
	} `json:"props"`
}

// ParseItemPayload maps the __NEXT_DATA__ JSON onto a snapshot.
// A payload without stats yields (nil, nil).
func ParseItemPayload(item Item, payload []byte) (*PriceSnapshot, error) {
	var data nextData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode __NEXT_DATA__: %w", err)
	}

	info := data.Props.PageProps.Item.ItemInfo
	stats := data.Props.PageProps.Item.Stats
	if stats == nil || stats.empty() {
		return nil, nil
	}

	snap := &PriceSnapshot{
		ItemID:      item.ID,
		ItemName:    item.Name,
		Quantity:    copperOrZero(stats.ItemCount),
		MinBuyout:   copperOrZero(stats.MinimumBuyout),
		VendorPrice: copperOrZero(info.SellPrice),
		LastSeen:    parseLastSeen(stats.ItemLastSeen),
	}
	if stats.AvgPrice != nil && *stats.AvgPrice > 0 {
		avg := int(math.Round(*stats.AvgPrice))
		snap.AvgPrice = &avg
	}
	return snap, nil
}

func copperOrZero(v *float64) int {
	if v == nil || *v < 0 {
		return 0
	}
	return int(math.Round(*v))
}

var lastSeenLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
}

// parseLastSeen accepts a timestamp string or unix seconds/milliseconds
func parseLastSeen(raw json.RawMessage) *time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		for _, layout := range lastSeenLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return &t
			}
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return unixTime(n)
		}
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
		return unixTime(int64(n))
	}
	return nil
}

func unixTime(n int64) *time.Time {
	var t time.Time
	if n > 1e12 {
		t = time.UnixMilli(n).UTC()
	} else {
		t = time.Unix(n, 0).UTC()
	}
	return &t
}
