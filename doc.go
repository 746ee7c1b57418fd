// finmarket: a client for the [Finmarket Live] market data service.
//
// 2 types of queries:
//   - Search (free-text instrument lookup)
//   - Chart (historical OHLCV series)
//
// Instructions:
//
//  1. Construct a [Client] with [NewClient]. The zero [Config] targets the
//     production service with a 30 second timeout.
//
//  2. Find instruments with [Client.Search] (market "chile") or
//     [Client.SearchMarket]. Each [SearchResult] carries the IDNotation
//     that chart calls take.
//
//  3. Fetch history: [Client.GetChartData] with a [TimeSpan], or the
//     wrappers [Client.GetIntraday], [Client.GetWeekly], [Client.GetMonthly],
//     [Client.GetYearly]. [Client.GetChart] exposes the full endpoint
//     surface (quality tier, volume flag, MAX date window).
//
//  4. [optional] Tabular output: import the finframe subpackage, then call
//     [ChartData.Frame]. Without that import Frame returns
//     [ErrFrameUnavailable].
//
// Every call is one blocking GET, bounded by the configured timeout. There
// are no retries and no caching. Failures are typed ([TransportError],
// [HTTPError], [ParseError]); branch with errors.As / errors.Is.
//
// [Finmarket Live]: https://bancobci.finmarketslive.cl
package finmarket
