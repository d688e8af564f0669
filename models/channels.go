package models

// channelNames maps collector channel codes to their Korean display names.
// Mirrors the mapping the upstream collector applies; kept here so items that
// arrive with a code but no resolved name still display something sensible.
var channelNames = map[string]string{
	"gsshop":      "GS샵",
	"gsmyshop":    "GS MY샵",
	"cjmall":      "CJ온스타일",
	"cjmyshop":    "CJ온스타일+",
	"cjmallplus":  "CJ온스타일+",
	"hmall":       "현대홈쇼핑",
	"hmallmyshop": "현대홈쇼핑+",
	"hmallplus":   "현대홈쇼핑+",
	"lotteimall":  "롯데홈쇼핑",
	"lottemyshop": "롯데원TV",
	"lotteonetv":  "롯데원TV",
	"immall":      "롯데아이몰",
	"nsmall":      "NS홈쇼핑",
	"nsmyshop":    "NS샵+",
	"nsmallplus":  "NS샵+",
	"hns":         "홈앤쇼핑",
	"hnsmyshop":   "홈앤쇼핑+",
	"hnsmall":     "홈앤쇼핑",
	"bshop":       "SK스토아",
	"bshopmyshop": "SK스토아+",
	"wshop":       "W쇼핑",
	"kshop":       "공영쇼핑",
	"kshopplus":   "공영쇼핑+",
	"shopnt":      "쇼핑엔T",
	"ssgshop":     "신세계쇼핑",
}

// ResolveChannelName returns the display name for a channel code, or the code
// itself when it is not a known home-shopping channel.
func ResolveChannelName(code string) string {
	if name, ok := channelNames[code]; ok {
		return name
	}
	return code
}
