/* Draft docs:
*
* OUTPUT CONTRACT
* * `print-ip` is meant to be run as an i3blocks / status-bar command, so stdout carries exactly one line, always, and the exit code is always 0
*   * On success that line is whatever the echo service said - the last non-empty line of its response, presumed to be an IP literal. No validation is done; the service is trusted
*   * On failure it's the `--failure_message` value, so the bar shows a calm placeholder rather than a stack trace
* * Everything diagnostic (`--dns`, `--verbose`, `--debug`) goes to stderr, where the bar won't pick it up
*
* RESOLUTION
* * The "resolution" is one raw TCP round-trip: dial the service on the requested address family, send a fixed `GET / HTTP/1.1`, read one buffer (2048B), take the last line
*   * Deliberately not an HTTP client: a client library would buffer, retry reads, follow redirects, and rewrite headers, none of which we want for a byte-exact single-recv exchange
*   * A response bigger than one buffer is truncated. Accepted: only the last line read matters, and these services answer in tens of bytes
* * Auto mode (the default) tries IPv6 first then IPv4, first success wins. `-6`/`-4` pin one family
* * All failures (DNS, refusal, timeout, garbage) collapse to "this family didn't answer". There's nothing the bar could do with more detail
*
* TIMEOUTS
* * None by default - the OS socket defaults apply, so a blackholed route can hang the run. Pass `-t` if your bar can't tolerate that; it arms the dial and the read/write deadlines
 */
package main
