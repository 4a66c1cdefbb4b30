/*
Package competency-app-sheets publishes the answers from the competency survey to a Google Sheets spreadsheet.

competency-app-sheets fetches the user directory, the question catalog and every user's answers from the survey API,
normalizes the answers and builds an answer matrix with one row per user and one column per question. The matrix and
the roster of users who have not answered are written to the 'data' and 'not answered' worksheets. It is intended to
be run from a cron job.

competency-app-sheets supports the following commands:

  - authorise, to authorise application access to the Google Sheets spreadsheet
  - generate, to rewrite the answer matrix and not-answered worksheets
  - export, to store the answer matrix to a local TSV or XLSX file
  - get-catalog, to download the question catalog as a TSV or YAML file
  - user-answers, to display the newest answers for a single user
*/
package sheets
