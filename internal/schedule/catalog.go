package schedule

import "strings"

// offeringKey: 科目コード（または科目名）×セクション名の複合キー。
// 両要素とも NormalizeLookup 済みの値を入れる。
type offeringKey struct {
	Text    string
	Section string
}

// Catalog は1回のインポート呼び出しの冒頭でまとめて読み込む参照スナップショット。
// 呼び出し中は不変。行処理中のカタログ参照はすべてこのメモリ上の索引に対して行い、
// DBへの読みはスナップショット取得の1往復に抑える。
type Catalog struct {
	roomByID   map[int64]Room
	roomByName map[string]Room
	// 自由記述からの部分一致検索用。読み込み順を保持し、最初に当たった部屋を返す。
	roomNames []string

	offeringByID          map[int64]Offering
	offeringByCodeSection map[offeringKey]Offering
	offeringByNameSection map[offeringKey]Offering
}

func NewCatalog(rooms []Room, offerings []Offering) *Catalog {
	c := &Catalog{
		roomByID:              make(map[int64]Room, len(rooms)),
		roomByName:            make(map[string]Room, len(rooms)),
		offeringByID:          make(map[int64]Offering, len(offerings)),
		offeringByCodeSection: make(map[offeringKey]Offering, len(offerings)),
		offeringByNameSection: make(map[offeringKey]Offering, len(offerings)),
	}
	for _, r := range rooms {
		name := NormalizeLookup(r.RoomName)
		c.roomByID[r.RoomID] = r
		if name != "" {
			if _, dup := c.roomByName[name]; !dup {
				c.roomNames = append(c.roomNames, name)
			}
			c.roomByName[name] = r
		}
	}
	for _, o := range offerings {
		c.offeringByID[o.OfferingID] = o
		section := NormalizeLookup(o.SectionName)
		c.offeringByCodeSection[offeringKey{NormalizeLookup(o.SubjectCode), section}] = o
		c.offeringByNameSection[offeringKey{NormalizeLookup(o.SubjectName), section}] = o
	}
	return c
}

// FindRoomInText: 登録済みの部屋名がテキストに含まれていないか順に探す。
// "MWF 8-9 Room 101" のように schedule 欄へ部屋が紛れ込む行の救済用。
func (c *Catalog) FindRoomInText(text string) (Room, bool) {
	haystack := strings.ToLower(text)
	if haystack == "" {
		return Room{}, false
	}
	for _, name := range c.roomNames {
		if strings.Contains(haystack, name) {
			return c.roomByName[name], true
		}
	}
	return Room{}, false
}
