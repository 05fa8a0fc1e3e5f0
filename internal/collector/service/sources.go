package service

import "strings"

// sourceEntry maps a domain substring to a publisher display name.
type sourceEntry struct {
	domain    string
	publisher string
}

// sourceTable is iterated in order; the first domain substring contained in
// the URL wins, so the slice order is the deterministic tie-break.
var sourceTable = []sourceEntry{
	{"hankyung.com", "한국경제"},
	{"sedaily.com", "서울경제"},
	{"newsis.com", "뉴시스"},
	{"fnnews.com", "파이낸셜뉴스"},
	{"mk.co.kr", "매일경제"},
	{"chosun.com", "조선일보"},
	{"donga.com", "동아일보"},
	{"joongang.co.kr", "중앙일보"},
	{"hani.co.kr", "한겨레"},
	{"khan.co.kr", "경향신문"},
	{"yna.co.kr", "연합뉴스"},
	{"sbs.co.kr", "SBS"},
	{"kbs.co.kr", "KBS"},
	{"mbc.co.kr", "MBC"},
	{"etoday.co.kr", "이투데이"},
	{"ichannela.com", "채널A"},
	{"inews24.com", "아이뉴스24"},
	{"newspim.com", "뉴스핌"},
	{"moneys.co.kr", "머니S"},
	{"bizhankook.com", "비즈한국"},
	{"pinpointnews.co.kr", "핀포인트뉴스"},
	{"areyou.co.kr", "아유경제"},
	{"munhwa.com", "문화일보"},
	{"mediapen.com", "미디어펜"},
}

// fallbackSource is returned when no table entry matches.
const fallbackSource = "기타"

// AttributeSource maps a news URL to a publisher display name.
func AttributeSource(url string) string {
	for _, entry := range sourceTable {
		if strings.Contains(url, entry.domain) {
			return entry.publisher
		}
	}
	return fallbackSource
}
