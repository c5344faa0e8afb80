package sentiment

// lexicon maps lowercase tokens to valence scores in [-5, 5], AFINN style.
// The base list is trimmed to terms that actually show up in market and
// business headlines, with a handful of finance-specific additions at the end.
var lexicon = map[string]int{
	"abandon":       -2,
	"abandoned":     -2,
	"accelerate":    2,
	"accelerated":   2,
	"accused":       -2,
	"achieve":       2,
	"achieved":      2,
	"advance":       2,
	"advances":      2,
	"adverse":       -2,
	"alarming":      -3,
	"alert":         -1,
	"ambitious":     2,
	"approval":      2,
	"approved":      2,
	"attractive":    2,
	"awful":         -3,
	"bad":           -3,
	"ban":           -2,
	"banned":        -2,
	"bankruptcy":    -4,
	"beat":          2,
	"beats":         2,
	"benefit":       2,
	"benefits":      2,
	"best":          3,
	"block":         -1,
	"blocked":       -2,
	"bold":          2,
	"boom":          3,
	"booming":       3,
	"boost":         2,
	"boosted":       2,
	"boosts":        2,
	"breakthrough":  3,
	"bright":        2,
	"brilliant":     4,
	"broke":         -1,
	"burden":        -2,
	"calm":          2,
	"cancel":        -1,
	"cancelled":     -1,
	"catastrophic":  -4,
	"caution":       -1,
	"cautious":      -1,
	"challenge":     -1,
	"challenges":    -1,
	"chaos":         -3,
	"cheat":         -3,
	"cheerful":      2,
	"clash":         -2,
	"collapse":      -3,
	"collapsed":     -3,
	"committed":     1,
	"concern":       -2,
	"concerned":     -2,
	"concerns":      -2,
	"confidence":    2,
	"confident":     2,
	"conflict":      -2,
	"congrats":      2,
	"controversial": -2,
	"corruption":    -3,
	"crash":         -3,
	"crashed":       -3,
	"crisis":        -3,
	"critical":      -2,
	"cut":           -1,
	"cuts":          -1,
	"damage":        -3,
	"damaged":       -3,
	"danger":        -2,
	"deadlock":      -2,
	"debt":          -1,
	"decline":       -2,
	"declined":      -2,
	"declines":      -2,
	"defeat":        -2,
	"deficit":       -2,
	"delay":         -1,
	"delayed":       -1,
	"denied":        -2,
	"denies":        -2,
	"depressed":     -2,
	"disappointing": -2,
	"disaster":      -3,
	"dismal":        -3,
	"dispute":       -2,
	"disruption":    -2,
	"doubt":         -1,
	"doubts":        -1,
	"downgrade":     -3,
	"downgraded":    -3,
	"downturn":      -3,
	"drop":          -2,
	"dropped":       -2,
	"drops":         -2,
	"dull":          -2,
	"eager":         2,
	"earn":          1,
	"earns":         1,
	"easy":          1,
	"efficient":     2,
	"embattled":     -2,
	"emergency":     -2,
	"encouraging":   2,
	"energetic":     2,
	"enjoy":         2,
	"excellent":     3,
	"exciting":      3,
	"expand":        2,
	"expands":       2,
	"expansion":     2,
	"fail":          -2,
	"failed":        -2,
	"fails":         -2,
	"failure":       -2,
	"fake":          -3,
	"fall":          -2,
	"falling":       -2,
	"falls":         -2,
	"fantastic":     4,
	"favorable":     2,
	"fear":          -2,
	"fears":         -2,
	"fine":          2,
	"fired":         -2,
	"flat":          -1,
	"fraud":         -4,
	"free":          1,
	"fresh":         1,
	"gain":          2,
	"gained":        2,
	"gains":         2,
	"generous":      2,
	"glad":          3,
	"gloomy":        -2,
	"good":          3,
	"great":         3,
	"greed":         -3,
	"grew":          2,
	"grow":          2,
	"growing":       2,
	"growth":        2,
	"halt":          -2,
	"halted":        -2,
	"happy":         3,
	"hard":          -1,
	"haven":         1,
	"healthy":       2,
	"help":          2,
	"helps":         2,
	"hike":          -1,
	"hit":           -1,
	"hope":          2,
	"hopeful":       2,
	"hopes":         2,
	"hot":           1,
	"huge":          1,
	"hurt":          -2,
	"hurts":         -2,
	"ignore":        -1,
	"impressive":    3,
	"improve":       2,
	"improved":      2,
	"improves":      2,
	"improving":     2,
	"innovative":    2,
	"insolvency":    -4,
	"inspiring":     2,
	"interesting":   2,
	"investigation": -2,
	"jump":          2,
	"jumped":        2,
	"jumps":         2,
	"kill":          -3,
	"launch":        1,
	"launched":      1,
	"launches":      1,
	"lawsuit":       -2,
	"layoff":        -3,
	"layoffs":       -3,
	"leader":        2,
	"leading":       2,
	"limited":       -1,
	"litigation":    -2,
	"lose":          -3,
	"loses":         -3,
	"loss":          -3,
	"losses":        -3,
	"lost":          -3,
	"love":          3,
	"lucrative":     3,
	"miss":          -2,
	"missed":        -2,
	"misses":        -2,
	"mixed":         -1,
	"negative":      -2,
	"nervous":       -2,
	"nice":          3,
	"offline":       -1,
	"opportunity":   2,
	"optimism":      2,
	"optimistic":    2,
	"outage":        -2,
	"outperform":    3,
	"outperforms":   3,
	"overvalued":    -2,
	"panic":         -3,
	"peak":          2,
	"penalty":       -2,
	"perfect":       3,
	"plunge":        -3,
	"plunged":       -3,
	"plunges":       -3,
	"poor":          -2,
	"popular":       3,
	"positive":      2,
	"probe":         -2,
	"problem":       -2,
	"problems":      -2,
	"profit":        2,
	"profitable":    2,
	"profits":       2,
	"progress":      2,
	"promising":     2,
	"protest":       -2,
	"protests":      -2,
	"rally":         2,
	"rallied":       2,
	"rallies":       2,
	"rebound":       2,
	"rebounds":      2,
	"record":        1,
	"recover":       2,
	"recovered":     2,
	"recovery":      2,
	"regret":        -2,
	"reject":        -1,
	"rejected":      -1,
	"relief":        1,
	"resign":        -1,
	"resigned":      -1,
	"restore":       1,
	"restructuring": -2,
	"rich":          2,
	"risk":          -2,
	"risks":         -2,
	"risky":         -2,
	"robust":        2,
	"rose":          2,
	"sanction":      -2,
	"sanctions":     -2,
	"scam":          -2,
	"scandal":       -3,
	"secure":        2,
	"sell":          -1,
	"selloff":       -3,
	"shortage":      -2,
	"shortfall":     -2,
	"shutdown":      -2,
	"significant":   1,
	"sink":          -2,
	"sinks":         -2,
	"slash":         -2,
	"slashed":       -2,
	"slide":         -2,
	"slides":        -2,
	"slip":          -1,
	"slips":         -1,
	"slow":          -2,
	"slowdown":      -2,
	"slump":         -3,
	"slumps":        -3,
	"soar":          3,
	"soared":        3,
	"soars":         3,
	"solid":         2,
	"solution":      1,
	"stable":        2,
	"stagnant":      -2,
	"steady":        2,
	"stellar":       3,
	"stimulus":      2,
	"stress":        -2,
	"strike":        -2,
	"strikes":       -2,
	"strong":        2,
	"stronger":      2,
	"struggle":      -2,
	"struggles":     -2,
	"struggling":    -2,
	"success":       2,
	"successful":    3,
	"sue":           -2,
	"sued":          -2,
	"super":         3,
	"support":       2,
	"surge":         3,
	"surged":        3,
	"surges":        3,
	"surplus":       2,
	"suspend":       -2,
	"suspended":     -2,
	"tank":          -3,
	"tanks":         -3,
	"threat":        -2,
	"threats":       -2,
	"top":           2,
	"tough":         -1,
	"trouble":       -2,
	"troubled":      -2,
	"tumble":        -3,
	"tumbled":       -3,
	"tumbles":       -3,
	"turmoil":       -3,
	"uncertain":     -2,
	"uncertainty":   -2,
	"undervalued":   1,
	"unemployment":  -2,
	"unstable":      -2,
	"up":            1,
	"upbeat":        2,
	"upgrade":       2,
	"upgraded":      2,
	"upside":        2,
	"vibrant":       3,
	"victory":       3,
	"violation":     -2,
	"volatile":      -2,
	"volatility":    -2,
	"warn":          -2,
	"warned":        -2,
	"warning":       -3,
	"warns":         -2,
	"weak":          -2,
	"weaker":        -2,
	"weakness":      -2,
	"wealth":        2,
	"win":           4,
	"winner":        4,
	"wins":          4,
	"worry":         -3,
	"worrying":      -3,
	"worse":         -3,
	"worst":         -3,
	"worthless":     -2,
	"wow":           4,
	"wrong":         -2,
}
