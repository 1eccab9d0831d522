package toeapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gpv-bot/internal/domain/entity"
)

// Key — зв'язка (cityId, streetId) з чергами на цій вулиці.
// Один запит по ключу повертає графіки всіх черг вулиці.
type Key struct {
	CityID   int
	StreetID int
	Groups   []string
}

// Client — альтернативне джерело графіків: REST API обленерго.
// Віддає дані у тій самій канонічній формі, що й розпізнавач зображень,
// тому результат зливається тим самим мерджером без змін.
type Client struct {
	baseURL string
	keys    []Key
	http    *http.Client
	loc     *time.Location
	log     zerolog.Logger
}

// NewClient створює клієнт API з вуличними ключами та зоною регіону.
func NewClient(baseURL string, keys []Key, loc *time.Location, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		keys:    keys,
		http:    &http.Client{Timeout: 15 * time.Second},
		loc:     loc,
		log:     log,
	}
}

// DebugKey будує значення заголовка X-debug-key: base64 "cityId/streetId".
func DebugKey(cityID, streetID int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%d/%d", cityID, streetID)))
}

type apiResponse struct {
	Members []apiMember `json:"hydra:member"`
}

type apiMember struct {
	DateGraph string              `json:"dateGraph"`
	DataJSON  map[string]apiGroup `json:"dataJson"`
}

type apiGroup struct {
	Times map[string]any `json:"times"`
}

// FetchAll обходить усі вуличні ключі та збирає графіки, згруповані за
// unix timestamp початку доби. Помилка одного ключа не зупиняє решту.
func (c *Client) FetchAll(ctx context.Context, before, after string) (map[string]map[string]entity.HourMap, error) {
	out := make(map[string]map[string]entity.HourMap)
	nowMs := time.Now().UnixMilli()

	for i, key := range c.keys {
		if len(key.Groups) == 0 {
			continue
		}
		if err := c.fetchKey(ctx, key, before, after, nowMs+int64(i), out); err != nil {
			c.log.Error().Err(err).
				Int("cityId", key.CityID).
				Int("streetId", key.StreetID).
				Msg("запит до API не вдався")
		}
	}

	c.log.Info().Int("dates", len(out)).Msg("завантаження графіків з API завершено")
	return out, nil
}

func (c *Client) fetchKey(ctx context.Context, key Key, before, after string, tp int64, out map[string]map[string]entity.HourMap) error {
	q := url.Values{}
	q.Set("before", before)
	q.Set("after", after)
	q.Set("group[]", key.Groups[0])
	q.Set("time", strconv.FormatInt(tp, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/a_gpv_g?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Origin", "https://toe-poweron.inneti.net")
	req.Header.Set("X-debug-key", DebugKey(key.CityID, key.StreetID))
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Members) == 0 {
		c.log.Warn().Int("cityId", key.CityID).Int("streetId", key.StreetID).Msg("порожня відповідь API")
		return nil
	}

	for _, m := range parsed.Members {
		rawDate, _, _ := strings.Cut(m.DateGraph, "T")
		if rawDate == "" {
			continue
		}
		dt, err := time.ParseInLocation("2006-01-02", rawDate, c.loc)
		if err != nil {
			continue
		}
		tsKey := strconv.FormatInt(dt.Unix(), 10)

		bucket := out[tsKey]
		if bucket == nil {
			bucket = make(map[string]entity.HourMap)
			out[tsKey] = bucket
		}

		for rawName, group := range m.DataJSON {
			// Назва групи може нести суфікс після "#".
			name, _, _ := strings.Cut(rawName, "#")
			bucket[entity.GroupPrefix+name] = ConvertTimes(group.Times)
		}
	}

	return nil
}
