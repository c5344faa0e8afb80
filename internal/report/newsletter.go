// Package report renders the HTML market brief sent to subscribers.
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"sentimentai/internal/domain"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// catalystLimit caps how many headlines make it into the brief.
const catalystLimit = 3

type newsletterData struct {
	Email       string
	Name        string
	Verdict     domain.Verdict
	AccentColor string
	CardColor   string
	BorderColor string
	PriceLine   string
	ChangeLine  string
	ChangeColor string
	Catalysts   []catalyst
	Year        int
}

type catalyst struct {
	Title      string
	URL        string
	Category   domain.SentimentCategory
	BadgeColor string
	BadgeBg    string
}

var newsletterTmpl = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>SentimentAI Newsletter: {{.Name}}</title>
</head>
<body style="margin:0;padding:0;background-color:#eff6ff;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
<table border="0" cellpadding="0" cellspacing="0" width="100%" style="background-color:#eff6ff;padding:40px 0;">
<tr><td align="center">
<table border="0" cellpadding="0" cellspacing="0" width="600" style="background-color:#ffffff;border-radius:12px;margin:0 auto;max-width:600px;">
<tr>
<td align="left" style="padding:40px 40px 20px 40px;font-size:24px;font-weight:800;color:#0f172a;border-bottom:2px solid #f1f5f9;">
<span style="color:{{.AccentColor}};">Sentiment</span>AI
</td>
</tr>
<tr>
<td style="padding:40px;">
<h1 style="margin:0 0 16px 0;font-size:28px;font-weight:800;color:#0f172a;">{{.Name}} Market Brief</h1>
<p style="margin:0 0 24px 0;font-size:16px;color:#475569;line-height:1.6;">
Hi there,<br><br>
Here is your personalized market intelligence brief for <strong>{{.Name}}</strong>: the latest
price action, momentum and news sentiment, condensed into one call.
</p>
<div style="background-color:{{.CardColor}};border:1px solid {{.BorderColor}};border-radius:8px;padding:24px;text-align:center;margin-bottom:32px;">
<p style="margin:0 0 8px 0;font-size:14px;text-transform:uppercase;letter-spacing:1px;color:#64748b;font-weight:700;">Engine Verdict</p>
<h2 style="margin:0 0 8px 0;font-size:36px;font-weight:900;color:{{.AccentColor}};letter-spacing:2px;">{{.Verdict}}</h2>
<p style="margin:0;font-size:18px;color:#0f172a;font-weight:600;">
{{.PriceLine}} <span style="color:{{.ChangeColor}};font-size:16px;">({{.ChangeLine}})</span>
</p>
</div>
<h3 style="margin:0 0 24px 0;font-size:20px;font-weight:700;color:#0f172a;">Top Market Catalysts</h3>
<table border="0" cellpadding="0" cellspacing="0" width="100%">
{{range .Catalysts}}<tr>
<td style="padding-bottom:20px;">
<a href="{{.URL}}" style="text-decoration:none;color:#1e293b;font-weight:600;font-size:16px;display:block;margin-bottom:6px;">{{.Title}}</a>
<span style="display:inline-block;padding:4px 10px;border-radius:4px;font-size:12px;font-weight:600;background-color:{{.BadgeBg}};color:{{.BadgeColor}};">{{.Category}}</span>
</td>
</tr>
{{else}}<tr><td style="color:#64748b;font-size:15px;">No critical breaking news impacting this asset currently. Consolidating purely on technicals.</td></tr>
{{end}}</table>
</td>
</tr>
<tr>
<td align="center" style="background-color:#f8fafc;padding:32px 40px;border-top:1px solid #e2e8f0;font-size:12px;color:#94a3b8;line-height:1.6;">
This email was sent to <strong>{{.Email}}</strong>.<br>
You received this email because you are subscribed to SentimentAI Insights.<br><br>
&copy; {{.Year}} SentimentAI. All rights reserved.
</td>
</tr>
</table>
</td></tr>
</table>
</body>
</html>
`))

// RenderNewsletter produces the HTML payload for one analysis, addressed to
// email.
func RenderNewsletter(email string, analysis *domain.Analysis) (string, error) {
	snap := analysis.Snapshot

	accent, card, border := "#6366f1", "#f8fafc", "#e2e8f0"
	switch analysis.Verdict.Verdict {
	case domain.VerdictBullish:
		accent, card, border = "#16a34a", "#f0fdf4", "#bbf7d0"
	case domain.VerdictBearish:
		accent, card, border = "#dc2626", "#fef2f2", "#fecaca"
	}

	changeColor := "#16a34a"
	changeSign := "+"
	if snap.Change < 0 {
		changeColor = "#dc2626"
		changeSign = ""
	}

	data := newsletterData{
		Email:       email,
		Name:        snap.Name,
		Verdict:     analysis.Verdict.Verdict,
		AccentColor: accent,
		CardColor:   card,
		BorderColor: border,
		PriceLine:   formatPrice(snap.Price, snap.Currency),
		ChangeLine:  fmt.Sprintf("%s%.2f%%", changeSign, snap.ChangePercent),
		ChangeColor: changeColor,
		Year:        time.Now().Year(),
	}

	articles := analysis.Summary.AnalyzedData
	if len(articles) > catalystLimit {
		articles = articles[:catalystLimit]
	}
	for _, a := range articles {
		badgeColor, badgeBg := "#64748b", "#f1f5f9"
		switch a.Category {
		case domain.CategoryPositive:
			badgeColor, badgeBg = "#16a34a", "#dcfce7"
		case domain.CategoryNegative:
			badgeColor, badgeBg = "#dc2626", "#fee2e2"
		}
		data.Catalysts = append(data.Catalysts, catalyst{
			Title:      a.Title,
			URL:        a.URL,
			Category:   a.Category,
			BadgeColor: badgeColor,
			BadgeBg:    badgeBg,
		})
	}

	var sb strings.Builder
	if err := newsletterTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render newsletter: %w", err)
	}
	return sb.String(), nil
}

func formatPrice(price float64, currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return fmt.Sprintf("%s%.2f", symbol, price)
	}
	return fmt.Sprintf("%.2f %s", price, currency)
}
