// Package content serves the static educational material: the stock-market
// study guide, the stock catalog and the quiz.
package content

// GuideSection is one card of the study guide.
type GuideSection struct {
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	Content string `json:"content"`
}

var guideSections = []GuideSection{
	{
		Title:   "Basics of Stock Trading",
		Icon:    "school",
		Content: "Stock trading involves buying and selling shares of publicly traded companies. When you buy a stock, you own a small piece of that company and can benefit from its growth and profits.",
	},
	{
		Title:   "Types of Stocks",
		Icon:    "category",
		Content: "Large-cap: Market value > $10B\nMid-cap: $2B-$10B\nSmall-cap: < $2B\nEach category offers different risk and growth potential.",
	},
	{
		Title:   "Investment Strategies",
		Icon:    "strategy",
		Content: "Long-term investing: Buy and hold for years\nValue investing: Look for undervalued stocks\nGrowth investing: Focus on companies with high growth potential\nDividend investing: Focus on stocks that pay regular dividends",
	},
	{
		Title:   "Risks & Rewards",
		Icon:    "warning",
		Content: "Risks: Market volatility, company performance, economic conditions\nRewards: Capital appreciation, dividends, portfolio diversification",
	},
	{
		Title:   "Market Indicators",
		Icon:    "analytics",
		Content: "Key indicators include:\n- Price-to-Earnings (P/E) Ratio\n- Moving Averages\n- Trading Volume\n- Market Indices (S&P 500, NASDAQ)",
	},
	{
		Title:   "Stock Terms",
		Icon:    "menu-book",
		Content: "IPO: Initial Public Offering\nBlue Chip: Large, stable companies\nDividend: Share of profits paid to stockholders\nBull Market: Rising market\nBear Market: Falling market",
	},
}

// Guide returns the study guide sections.
func Guide() []GuideSection {
	out := make([]GuideSection, len(guideSections))
	copy(out, guideSections)
	return out
}
