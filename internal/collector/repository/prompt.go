package repository

import "fmt"

// BuildRelevancePrompt asks the model to rate how relevant a news item is to
// the named apartment, with the same four-tier rubric the keyword judge
// approximates.
func BuildRelevancePrompt(entityName, title, description string) string {
	return fmt.Sprintf(`당신은 부동산 뉴스 분석 전문가입니다.

아래 뉴스가 '%s' 아파트와 직접적으로 관련이 있는지 판단해주세요.

[뉴스 제목]
%s

[뉴스 내용]
%s

판단 기준:
- 해당 아파트가 직접 언급되어 구체적인 정보(가격, 거래, 재건축, 분양 등)가 있으면 관련성 높음 (0.8~1.0)
- 해당 아파트가 언급되지만 단순 나열에 불과하면 중간 (0.5~0.7)
- 동일 지역이나 유사 아파트만 언급되면 낮음 (0.3~0.5)
- 전혀 관련 없으면 매우 낮음 (0~0.3)

JSON 형식으로 응답해주세요:
{"score": 0.0~1.0, "reason": "판단 근거 한 줄 요약"}

답변은 JSON 형식만 허용됩니다.`, entityName, title, description)
}
