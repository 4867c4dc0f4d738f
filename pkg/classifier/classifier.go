package classifier

import (
	"strings"

	"FundRadar/pkg/model"
)

// prefixRule 前缀匹配规则
type prefixRule struct {
	prefix   string
	fundType model.FundType
}

// rules 按顺序匹配，首个命中生效。顺序不可调整：
// "161"在"1619"之前，因此1619开头的代码会命中stock而非bond。
var rules = []prefixRule{
	{"000", model.FundTypeMix},
	{"001", model.FundTypeMix},
	{"1617", model.FundTypeIndex},
	{"1634", model.FundTypeIndex},
	{"519", model.FundTypeStock},
	{"161", model.FundTypeStock},
	{"1619", model.FundTypeBond},
	{"005", model.FundTypeBond},
	{"002", model.FundTypeMoney},
	{"003", model.FundTypeMoney},
}

// Classify 根据基金代码前缀判断基金类型，未命中任何规则时返回混合型
func Classify(code string) model.FundType {
	for _, r := range rules {
		if strings.HasPrefix(code, r.prefix) {
			return r.fundType
		}
	}
	return model.FundTypeMix
}
