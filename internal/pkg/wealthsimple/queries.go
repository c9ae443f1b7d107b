// Copyright 2026 Peter Edge
//
// All rights reserved.

package wealthsimple

const fetchAccountsQuery = `query FetchAllAccounts($first: Int, $cursor: String) {
  identity {
    accounts(filter: {}, first: $first, after: $cursor) {
      edges {
        node {
          id
          number
          description: nickname
          unifiedAccountType
          type
          financials {
            currentCombined {
              netLiquidationValue {
                amount
                currency
              }
            }
          }
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

const fetchActivitiesQuery = `query FetchActivityFeedItems($accountIds: [String!], $first: Int, $cursor: Cursor) {
  activityFeedItems(
    first: $first
    after: $cursor
    condition: {accountIds: $accountIds}
    orderBy: OCCURRED_AT_DESC
  ) {
    edges {
      node {
        type
        subType
        description
        occurredAt
        amount
        amountSign
        currency
        securityId
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

const fetchPositionsQuery = `query FetchIdentityPositions($currency: Currency!, $first: Int, $cursor: String) {
  identity {
    financials(filter: {}) {
      current(currency: $currency) {
        positions(first: $first, after: $cursor) {
          edges {
            node {
              quantity
              accounts {
                id
              }
              security {
                id
              }
              totalValue: totalValue(currency: $currency) {
                amount
                currency
              }
              bookValue: bookValue(currency: $currency) {
                amount
                currency
              }
            }
          }
          pageInfo {
            hasNextPage
            endCursor
          }
        }
      }
    }
  }
}`

const fetchSecurityMarketDataQuery = `query FetchSecurityMarketData($id: ID!) {
  security(id: $id) {
    id
    stock {
      symbol
      name
    }
  }
}`
