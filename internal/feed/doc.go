/*
Package feed fetches the two NDBC telemetry feeds.

# Overview

The feed package owns feed identity and transport:
  - Definition: name, table title, endpoint per feed
  - Fetch: one blocking GET per call, full body returned as text
  - Parse: dispatch to the right parser for the feed

# Feeds

Latest observations (plaintext):
  - https://www.ndbc.noaa.gov/data/latest_obs/latest_obs.txt
  - Comment lines prefixed with '#'
  - Whitespace-delimited records, 22 columns

Active stations (XML):
  - https://www.ndbc.noaa.gov/activestations.xml
  - One <station> element per station, attributes only
  - 10 columns

Endpoints are overridable through the settings file but fixed for the
duration of a run.

# Error Policy

No retry, no backoff, no partial results. A transport error, a non-200
status, or a parse failure is returned to the caller, which aborts the run.
*/
package feed
