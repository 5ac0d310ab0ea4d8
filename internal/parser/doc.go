/*
Package parser converts raw NDBC feed bodies into typed records.

# Overview

Two parsers, one per feed format:
  - ParseObservations: plaintext, line-oriented
  - ParseStations: XML, attribute-oriented

# Observations (plaintext)

The latest-observations feed opens with '#'-prefixed header and unit lines,
followed by one whitespace-delimited record per line:

	#STN    LAT     LON  YYYY MM DD hh mm WDIR WSPD ...
	#text   degT    m/s  ...
	41001  34.714 -72.733 2024 01 15 10 50 210  8.0 ...

Comment lines and blank lines are skipped; everything else becomes a row of
string fields. Field counts are not enforced here.

# Stations (XML)

The active-stations feed carries one <station> element per station:

	<station id="41001" name="EAST HATTERAS" lat="34.714" lon="-72.733"
	         pgm="IOOS Partners" type="buoy" met="y" currents="n"
	         waterquality="n" dart="n"/>

Attribute policy:
  - lat, lon: required, absence fails the parse
  - id, name, pgm, type: optional, absence substitutes a placeholder
  - met, currents, waterquality, dart: optional, absence substitutes "n"
*/
package parser
